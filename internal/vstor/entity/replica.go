package entity

import "github.com/jimyag/vstor/pkg/apierror"

// Replica 存储副本实体
// URI 由 (uuid, share) 唯一确定，见 service 层的推导规则
type Replica struct {
	UUID  string        `json:"uuid"`  // 副本 UUID（唯一标识）
	Pool  string        `json:"pool"`  // 所属存储池名称
	Size  uint64        `json:"size"`  // 大小（字节）
	Thin  bool          `json:"thin"`  // 是否瘦分配；瘦分配副本不计入存储池 used
	Share ShareProtocol `json:"share"` // 共享协议：NONE, NVMF, ISCSI
	URI   string        `json:"uri"`   // 访问 URI，由 uuid 和 share 推导
}

// ReplicaStats 副本统计快照
// 模拟器不做真实 I/O，四个计数器在一次 stat 调用内取同一个全局计数值
type ReplicaStats struct {
	UUID         string `json:"uuid"`         // 副本 UUID
	Pool         string `json:"pool"`         // 所属存储池名称
	NumReadOps   uint64 `json:"numReadOps"`   // 累计读操作数
	NumWriteOps  uint64 `json:"numWriteOps"`  // 累计写操作数
	BytesRead    uint64 `json:"bytesRead"`    // 累计读字节数
	BytesWritten uint64 `json:"bytesWritten"` // 累计写字节数
}

// ============================================================================
// API 请求和响应
// ============================================================================

// CreateReplicaRequest 创建副本请求
// 幂等：同 uuid 重复创建返回已存在的副本，不做任何修改
// thin 和 share 允许为零值：thin 默认 false，share 为空默认 NONE
type CreateReplicaRequest struct {
	UUID  string `json:"uuid" binding:"required"` // 副本 UUID
	Pool  string `json:"pool" binding:"required"` // 所属存储池名称，必须已存在
	Size  uint64 `json:"size" binding:"required"` // 大小（字节）
	Thin  bool   `json:"thin"`                    // 是否瘦分配
	Share string `json:"share"`                   // 共享协议，为空默认 NONE
}

// IsValid 校验请求参数
func (r *CreateReplicaRequest) IsValid() error {
	if r.UUID == "" {
		return apierror.WithMessagef(apierror.ErrMissingParameter, "The request must contain the parameter 'uuid'")
	}
	if r.Pool == "" {
		return apierror.WithMessagef(apierror.ErrMissingParameter, "The request must contain the parameter 'pool'")
	}
	if r.Size == 0 {
		return apierror.WithMessagef(apierror.ErrMissingParameter, "The request must contain the parameter 'size'")
	}
	return nil
}

// CreateReplicaResponse 创建副本响应
type CreateReplicaResponse struct {
	Replica *Replica `json:"replica"`
}

// DestroyReplicaRequest 销毁副本请求
// 副本不存在时为成功的空操作
type DestroyReplicaRequest struct {
	UUID string `json:"uuid" binding:"required"` // 副本 UUID
}

// IsValid 校验请求参数
func (r *DestroyReplicaRequest) IsValid() error {
	if r.UUID == "" {
		return apierror.WithMessagef(apierror.ErrMissingParameter, "The request must contain the parameter 'uuid'")
	}
	return nil
}

// DestroyReplicaResponse 销毁副本响应
type DestroyReplicaResponse struct {
	Return bool `json:"return"`
}

// ListReplicasRequest 列举副本请求
type ListReplicasRequest struct{}

// ListReplicasResponse 列举副本响应，按创建顺序返回
type ListReplicasResponse struct {
	Replicas []Replica `json:"replicas"`
}

// StatReplicasRequest 副本统计请求
type StatReplicasRequest struct{}

// StatReplicasResponse 副本统计响应
type StatReplicasResponse struct {
	Replicas []ReplicaStats `json:"replicas"`
}

// ShareReplicaRequest 共享副本请求
// 重新推导 URI 并更新存储的协议，不改变大小和所属存储池
type ShareReplicaRequest struct {
	UUID  string `json:"uuid"  binding:"required"` // 副本 UUID，必须已存在
	Share string `json:"share" binding:"required"` // 共享协议：NONE, NVMF, ISCSI
}

// IsValid 校验请求参数
// share 必须是已知的枚举值，未知值报 InvalidParameterValue
func (r *ShareReplicaRequest) IsValid() error {
	if r.UUID == "" {
		return apierror.WithMessagef(apierror.ErrMissingParameter, "The request must contain the parameter 'uuid'")
	}
	if r.Share == "" {
		return apierror.WithMessagef(apierror.ErrMissingParameter, "The request must contain the parameter 'share'")
	}
	if !ShareProtocol(r.Share).Known() {
		return apierror.WithMessagef(apierror.ErrInvalidParameterValue,
			"The share protocol '%s' is not valid, supported: NONE, NVMF, ISCSI", r.Share)
	}
	return nil
}

// ShareReplicaResponse 共享副本响应
type ShareReplicaResponse struct {
	URI string `json:"uri"` // 重新推导后的访问 URI
}
