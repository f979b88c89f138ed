package main

import(
	"log"
	"strconv"
	"strings"

	"github.com/abworrall/photoedit/pkg/photoedit"
)

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		log.Fatalf("bad number '%s': %v", s, err)
	}
	return f
}

func parseCrop(s string) photoedit.CropBox {
	vals := []int{}
	for _, field := range strings.Split(s, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			log.Fatalf("-crop '%s': %v", s, err)
		}
		vals = append(vals, v)
	}
	if len(vals) != 4 {
		log.Fatalf("-crop '%s': want x,y,w,h", s)
	}
	return photoedit.CropBox{X:vals[0], Y:vals[1], W:vals[2], H:vals[3]}
}
