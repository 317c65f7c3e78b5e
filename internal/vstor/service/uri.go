package service

import (
	"fmt"

	"github.com/jimyag/vstor/internal/vstor/entity"
)

const (
	// diskScheme 后备磁盘 URI 的固定 scheme
	diskScheme = "aio://"

	// nvmfPort NVMe-oF 端点端口
	nvmfPort = 8420
	// iscsiPort iSCSI 端点端口
	iscsiPort = 3260

	// nvmfNQNPrefix NVMe-oF 限定名前缀
	nvmfNQNPrefix = "nqn.2019-05.io.openebs"
	// iscsiIQNPrefix iSCSI 限定名前缀
	iscsiIQNPrefix = "iqn.2019-05.io.openebs"

	// poolCapacity 存储池的标称总容量（100 GiB）
	poolCapacity = uint64(100) << 30
	// poolUsedBaseline 存储池的初始已用容量基线（4 MiB）
	poolUsedBaseline = uint64(4) << 20

	// statDelta 每次 stat 调用全局计数器的固定增量
	statDelta = uint64(1000)
)

// diskURI 给原始磁盘路径加上固定 scheme
func diskURI(disk string) string {
	return diskScheme + disk
}

// shareURI 由 (uuid, share) 推导副本的访问 URI
// 对协议枚举是全函数：未知值走默认分支，落到 iSCSI 端点模板
func shareURI(host string, uuid string, share entity.ShareProtocol) string {
	switch share {
	case entity.ShareNone:
		return fmt.Sprintf("bdev:///%s", uuid)
	case entity.ShareNvmf:
		return fmt.Sprintf("nvmf://%s:%d/%s:%s", host, nvmfPort, nvmfNQNPrefix, uuid)
	default:
		return fmt.Sprintf("iscsi://%s:%d/%s:%s", host, iscsiPort, iscsiIQNPrefix, uuid)
	}
}

// nexusDeviceURI 由 uuid 推导 nexus 发布后的设备 URI
func nexusDeviceURI(host string, uuid string) string {
	return fmt.Sprintf("nvmf://%s:%d/%s:nexus-%s", host, nvmfPort, nvmfNQNPrefix, uuid)
}
