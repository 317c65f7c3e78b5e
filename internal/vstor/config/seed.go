package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Seed 启动时预置的拓扑
// 供测试框架绕过操作接口直接准备固定数据
type Seed struct {
	Pools    []SeedPool    `yaml:"pools"`
	Replicas []SeedReplica `yaml:"replicas"`
}

// SeedPool 预置的存储池
type SeedPool struct {
	Name  string   `yaml:"name"`
	Disks []string `yaml:"disks"`
}

// SeedReplica 预置的副本
type SeedReplica struct {
	UUID  string `yaml:"uuid"`
	Pool  string `yaml:"pool"`
	Size  uint64 `yaml:"size"`
	Thin  bool   `yaml:"thin"`
	Share string `yaml:"share"`
}

// LoadSeed 从 YAML 文件加载种子拓扑
func LoadSeed(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	seed := &Seed{}
	if err := yaml.Unmarshal(data, seed); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return seed, nil
}
