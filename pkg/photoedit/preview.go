package photoedit

import(
	"context"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/abworrall/photoedit/pkg/raster"
)

const DefaultPreviewDelay = 50 * time.Millisecond

// A PreviewFunc is any pure transform.
type PreviewFunc func(*raster.Buffer) *raster.Buffer

// A Preview is a finished render, tagged with the request that made it.
type Preview struct {
	Generation uint64
	Image     *raster.Buffer
}

func (p Preview)String() string {
	return fmt.Sprintf("Preview[gen %d, %s]", p.Generation, p.Image)
}

type previewJob struct {
	gen  uint64
	src *raster.Buffer
	fn   PreviewFunc
}

// Previewer renders previews on a pool of workers, for things like
// slider drags. Requests are debounced: one that hasn't started when
// a newer one arrives is dropped. Every request gets a generation
// number, and a render that finishes after a newer request was made
// is thrown away, so Results never goes backwards.
type Previewer struct {
	Verbosity  int

	delay      time.Duration
	workers    int
	generation uint64 // atomic

	mu         sync.Mutex
	timer     *time.Timer
	delivered  uint64

	jobs       chan previewJob
	results    chan Preview

	ctx        context.Context
	cancel     context.CancelFunc
	wg         sync.WaitGroup
	closeOnce  sync.Once
}

func NewPreviewer(ctx context.Context, nWorkers int, delay time.Duration) *Previewer {
	if nWorkers < 1 {
		nWorkers = 1
	}

	p := &Previewer{
		delay:   delay,
		workers: nWorkers,
		jobs:    make(chan previewJob, nWorkers),
		results: make(chan Preview, 1),
	}
	p.ctx, p.cancel = context.WithCancel(ctx)

	// Kick off worker pool
	for i:=0; i<nWorkers; i++ {
		p.wg.Add(1)

		go func() {
			defer p.wg.Done()
			for {
				select {
				case <-p.ctx.Done():
					return
				case job := <-p.jobs:
					p.run(job)
				}
			}
		}()
	}

	return p
}

func (p *Previewer)String() string {
	return fmt.Sprintf("Previewer[%d workers, delay %s, gen %d]", p.workers, p.delay, p.Generation())
}

// Results delivers finished previews, newest only. It is closed by Close.
func (p *Previewer)Results() <-chan Preview { return p.results }

func (p *Previewer)Generation() uint64 { return atomic.LoadUint64(&p.generation) }

func (p *Previewer)isStale(gen uint64) bool { return gen != p.Generation() }

// Request schedules fn(src) after the debounce delay, replacing any
// request still waiting. src must not be modified afterwards. Returns
// the generation number that the result will carry.
func (p *Previewer)Request(src *raster.Buffer, fn PreviewFunc) uint64 {
	gen := atomic.AddUint64(&p.generation, 1)
	job := previewJob{gen:gen, src:src, fn:fn}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.timer != nil {
		p.timer.Stop()
	}
	p.timer = time.AfterFunc(p.delay, func() { p.dispatch(job) })

	return gen
}

func (p *Previewer)dispatch(job previewJob) {
	if p.isStale(job.gen) {
		return
	}
	select {
	case p.jobs<- job:
	case <-p.ctx.Done():
	}
}

func (p *Previewer)run(job previewJob) {
	if p.isStale(job.gen) {
		return
	}

	img := job.fn(job.src)

	if !p.deliver(Preview{Generation:job.gen, Image:img}) && p.Verbosity > 0 {
		log.Printf("preview gen %d is stale (now at %d), dropped\n", job.gen, p.Generation())
	}
}

func (p *Previewer)deliver(pv Preview) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ctx.Err() != nil || p.isStale(pv.Generation) || pv.Generation <= p.delivered {
		return false
	}
	p.delivered = pv.Generation

	// Replace anything the consumer hasn't picked up yet; it's older.
	select {
	case <-p.results:
	default:
	}
	p.results<- pv
	return true
}

// Close stops the workers, and closes the results channel.
func (p *Previewer)Close() {
	p.closeOnce.Do(func() {
		p.mu.Lock()
		if p.timer != nil {
			p.timer.Stop()
		}
		p.mu.Unlock()

		p.cancel()
		p.wg.Wait()
		close(p.results)
	})
}
