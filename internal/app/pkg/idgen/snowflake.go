package idgen

import (
	"sync"
	"time"
)

// Generator ID 生成器接口（服务层注入，便于测试）
type Generator interface {
	NextID() int64
}

// SnowflakeIDGenerator 简化的雪花ID生成器
// ID格式: 秒级时间偏移 + 机器ID(2位) + 序列号(3位)
type SnowflakeIDGenerator struct {
	mu        sync.Mutex
	epoch     int64 // 起始时间戳 (2024-01-01 00:00:00 UTC)
	machineID int64 // 机器ID (0-99)
	sequence  int64 // 序列号 (0-999)
	lastTime  int64 // 上次生成ID的秒
	now       func() time.Time
}

const (
	maxMachineID = 99  // 最大机器ID
	maxSequence  = 999 // 每秒最大序列号
)

// NewSnowflakeIDGenerator 创建ID生成器
// machineID 越界时回退为 0
func NewSnowflakeIDGenerator(machineID int64) *SnowflakeIDGenerator {
	if machineID < 0 || machineID > maxMachineID {
		machineID = 0
	}

	return &SnowflakeIDGenerator{
		epoch:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Unix(),
		machineID: machineID,
		now:       time.Now,
	}
}

// NextID 生成下一个ID
func (g *SnowflakeIDGenerator) NextID() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now().Unix()
	if now < g.lastTime {
		// 时钟回拨：沿用上次的秒继续分配序列号
		now = g.lastTime
	}

	if now == g.lastTime {
		g.sequence = (g.sequence + 1) % (maxSequence + 1)
		if g.sequence == 0 {
			// 序列号用尽，等待下一秒
			for now <= g.lastTime {
				time.Sleep(time.Millisecond)
				now = g.now().Unix()
			}
		}
	} else {
		g.sequence = 0
	}

	g.lastTime = now

	return (now-g.epoch)*100000 + g.machineID*1000 + g.sequence
}

var defaultGenerator = NewSnowflakeIDGenerator(1)

// Default 返回进程级默认生成器
func Default() Generator {
	return defaultGenerator
}

// Init 按配置重建默认生成器，需在启动阶段调用
func Init(machineID int64) {
	defaultGenerator = NewSnowflakeIDGenerator(machineID)
}

// GenerateID 生成ID（使用默认生成器）
func GenerateID() int64 {
	return defaultGenerator.NextID()
}
