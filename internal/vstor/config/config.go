// Package config 提供服务配置
package config

import (
	"os"
)

type Config struct {
	// Address 是 HTTP API 的监听地址
	// 可以通过环境变量 VSTOR_ADDRESS 配置
	Address string

	// NodeName 是模拟节点的名称，出现在存活探测响应里
	// 可以通过环境变量 VSTOR_NODE_NAME 配置
	// 默认：主机名
	NodeName string

	// NodeHost 是推导网络端点 URI（nvmf/iscsi）时使用的节点地址
	// 可以通过环境变量 VSTOR_NODE_HOST 配置
	NodeHost string

	// SeedFile 是可选的 YAML 种子文件路径，启动时预置存储池和副本
	// 供测试框架做固定数据准备，绕过操作接口
	// 可以通过环境变量 VSTOR_SEED 配置，为空则不预置
	SeedFile string
}

func New() (*Config, error) {
	cfg := &Config{
		Address:  getAddress(),
		NodeName: getNodeName(),
		NodeHost: getNodeHost(),
		SeedFile: os.Getenv("VSTOR_SEED"),
	}
	return cfg, nil
}

// getAddress 获取监听地址，优先使用环境变量 VSTOR_ADDRESS
func getAddress() string {
	if addr := os.Getenv("VSTOR_ADDRESS"); addr != "" {
		return addr
	}

	return "0.0.0.0:10124"
}

// getNodeName 获取节点名称，优先使用环境变量 VSTOR_NODE_NAME
func getNodeName() string {
	if name := os.Getenv("VSTOR_NODE_NAME"); name != "" {
		return name
	}

	if hostname, err := os.Hostname(); err == nil {
		return hostname
	}

	return "vstor-node"
}

// getNodeHost 获取端点地址，优先使用环境变量 VSTOR_NODE_HOST
func getNodeHost() string {
	if host := os.Getenv("VSTOR_NODE_HOST"); host != "" {
		return host
	}

	return "127.0.0.1"
}
