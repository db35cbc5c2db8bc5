package consumer

import (
	"context"
	"sync"
	"time"

	"github.com/marxiobadel/farmer-sub002/internal/app/infra/mq/lmstfy"
	"github.com/marxiobadel/farmer-sub002/internal/app/pkg/logger"
)

// subscriber 从队列拉取消息，转发给 processor
type subscriber struct {
	cfg        *Config
	source     MessageSource
	stats      *Stats
	logger     logger.Logger
	cancelFunc context.CancelFunc
	wg         sync.WaitGroup
}

func newSubscriber(cfg *Config, source MessageSource, stats *Stats, logger logger.Logger) *subscriber {
	return &subscriber{
		cfg:    cfg,
		source: source,
		stats:  stats,
		logger: logger,
	}
}

// start 启动 cfg.Pullers 个拉取协程
func (s *subscriber) start(parentCtx context.Context, out chan<- *lmstfy.Message) {
	ctx, cancel := context.WithCancel(parentCtx)
	s.cancelFunc = cancel

	s.logger.Infof(ctx, "[Subscriber] starting %d pullers for queue: %s", s.cfg.Pullers, s.cfg.QueueName)
	for i := 0; i < s.cfg.Pullers; i++ {
		s.wg.Add(1)
		go s.loop(logger.WithWorkerID(ctx, i), i, out)
	}
}

// stop 不再拉取新消息
func (s *subscriber) stop() {
	if s.cancelFunc != nil {
		s.cancelFunc()
	}
}

func (s *subscriber) wait() {
	s.wg.Wait()
	s.logger.Infof(context.Background(), "[Subscriber] all pullers exited")
}

func (s *subscriber) loop(ctx context.Context, id int, out chan<- *lmstfy.Message) {
	defer s.wg.Done()

	for {
		if ctx.Err() != nil {
			return
		}

		msg, err := s.source.Consume(s.cfg.QueueName, s.cfg.Timeout, s.cfg.TTR)
		if err != nil {
			// 网络抖动不退出
			s.logger.Warnf(ctx, "[Subscriber-%d] consume error: %v, retrying", id, err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(s.cfg.ErrorBackoff):
			}
			continue
		}
		if msg == nil {
			continue
		}
		s.stats.Pulled.Inc()

		select {
		case out <- msg:
			s.logger.Debugf(ctx, "[Subscriber-%d] message dispatched: %s", id, msg.ID)
		case <-ctx.Done():
			// 未 ack，TTR 到期后由 lmstfy 重新投递
			s.logger.Warnf(ctx, "[Subscriber-%d] dropping message due to shutdown: %s", id, msg.ID)
			return
		}
	}
}
