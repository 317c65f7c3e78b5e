package entity

// ShareProtocol 副本的共享协议
type ShareProtocol string

const (
	// ShareNone 不共享，仅本地块设备可见
	ShareNone ShareProtocol = "NONE"
	// ShareNvmf 通过 NVMe-oF 共享
	ShareNvmf ShareProtocol = "NVMF"
	// ShareIscsi 通过 iSCSI 共享
	ShareIscsi ShareProtocol = "ISCSI"
)

// Known 判断协议是否为已知枚举值
func (p ShareProtocol) Known() bool {
	switch p {
	case ShareNone, ShareNvmf, ShareIscsi:
		return true
	}
	return false
}
