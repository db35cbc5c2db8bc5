package consumer

import (
	"context"
	"sync"
	"time"

	"github.com/marxiobadel/farmer-sub002/internal/app/infra/mq/lmstfy"
	"github.com/marxiobadel/farmer-sub002/internal/app/pkg/logger"
)

// processFunc 处理单条消息并返回 ack/retry
type processFunc func(ctx context.Context, msg *lmstfy.Message) action

// processor 从 channel 取消息交给 processFunc，退出前排空 channel
type processor struct {
	cfg        *Config
	proc       processFunc
	logger     logger.Logger
	shutdownCh chan struct{}
	wg         sync.WaitGroup
}

func newProcessor(cfg *Config, proc processFunc, logger logger.Logger) *processor {
	return &processor{
		cfg:        cfg,
		proc:       proc,
		logger:     logger,
		shutdownCh: make(chan struct{}),
	}
}

// start 启动 cfg.Processors 个处理协程
// 处理使用脱离取消信号的 ctx，保证停机时已取出的消息能处理完
func (p *processor) start(ctx context.Context, in <-chan *lmstfy.Message) {
	ctx = context.WithoutCancel(ctx)
	p.logger.Infof(ctx, "[Processor] starting %d workers", p.cfg.Processors)
	for i := 0; i < p.cfg.Processors; i++ {
		p.wg.Add(1)
		go p.loop(logger.WithWorkerID(ctx, i), i, in)
	}
}

// signalShutdown 进入 drain 模式
func (p *processor) signalShutdown() {
	close(p.shutdownCh)
}

func (p *processor) wait() {
	p.wg.Wait()
	p.logger.Infof(context.Background(), "[Processor] all workers exited")
}

func (p *processor) loop(ctx context.Context, id int, in <-chan *lmstfy.Message) {
	defer p.wg.Done()

	for {
		select {
		case msg := <-in:
			p.process(ctx, msg)

		case <-p.shutdownCh:
			count := 0
			for {
				select {
				case msg := <-in:
					p.process(ctx, msg)
					count++
				default:
					p.logger.Infof(ctx, "[Processor-%d] drained %d messages, exiting", id, count)
					return
				}
			}
		}
	}
}

func (p *processor) process(ctx context.Context, msg *lmstfy.Message) {
	if msg == nil {
		return
	}

	start := time.Now()
	procCtx, cancel := context.WithTimeout(ctx, p.cfg.ProcessTimeout)
	defer cancel()

	act := p.proc(procCtx, msg)
	p.logger.Debugf(procCtx, "message processed: job_id=%s, retry=%v, duration=%v",
		msg.ID, act == actionRetry, time.Since(start))
}
