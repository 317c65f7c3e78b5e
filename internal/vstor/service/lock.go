package service

import "sync"

// OpLock 全局操作锁
// 所有服务共用一把锁，操作被完整串行化执行，不存在可观察的中间状态。
// 全局统计计数器也在同一个串行化边界内。
type OpLock struct {
	mu sync.Mutex
}

// NewOpLock 创建全局操作锁
func NewOpLock() *OpLock {
	return &OpLock{}
}

// Lock 进入全局临界区
func (l *OpLock) Lock() {
	l.mu.Lock()
}

// Unlock 离开全局临界区
func (l *OpLock) Unlock() {
	l.mu.Unlock()
}
