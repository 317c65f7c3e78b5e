package entity

import "github.com/jimyag/vstor/pkg/apierror"

// nexus 和 child 状态
const (
	// NexusStateOnline 在线，本模型中 nexus 创建后不再转移状态
	NexusStateOnline = "ONLINE"

	// ChildStateOnline child 数据一致
	ChildStateOnline = "ONLINE"
	// ChildStateDegraded child 数据不一致，需要重建
	ChildStateDegraded = "DEGRADED"
)

// Child nexus 的子设备
// 由所属 nexus 独占，不能单独寻址
type Child struct {
	URI             string `json:"uri"`             // 来源 URI
	State           string `json:"state"`           // 状态：ONLINE, DEGRADED
	RebuildProgress int    `json:"rebuildProgress"` // 重建进度 0-100，仅 DEGRADED 时有意义
}

// Nexus 复合卷实体
// 由若干 child 组成，可发布为一个块设备
type Nexus struct {
	UUID      string  `json:"uuid"`      // nexus UUID（唯一标识）
	Size      uint64  `json:"size"`      // 大小（字节）
	State     string  `json:"state"`     // 状态：ONLINE
	Children  []Child `json:"children"`  // child 列表，按加入顺序
	DeviceURI string  `json:"deviceUri"` // 发布后的设备 URI，未发布为空
}

// ============================================================================
// API 请求和响应
// ============================================================================

// CreateNexusRequest 创建 nexus 请求
// 幂等：同 uuid 重复创建返回已存在的 nexus，不做任何修改
// 创建时给出的 children 视为数据一致，全部初始化为 ONLINE
type CreateNexusRequest struct {
	UUID     string   `json:"uuid"     binding:"required"` // nexus UUID
	Size     uint64   `json:"size"     binding:"required"` // 大小（字节）
	Children []string `json:"children" binding:"required"` // child 来源 URI 列表
}

// IsValid 校验请求参数
func (r *CreateNexusRequest) IsValid() error {
	if r.UUID == "" {
		return apierror.WithMessagef(apierror.ErrMissingParameter, "The request must contain the parameter 'uuid'")
	}
	if r.Size == 0 {
		return apierror.WithMessagef(apierror.ErrMissingParameter, "The request must contain the parameter 'size'")
	}
	if len(r.Children) == 0 {
		return apierror.WithMessagef(apierror.ErrMissingParameter, "The request must contain the parameter 'children'")
	}
	for _, child := range r.Children {
		if child == "" {
			return apierror.WithMessagef(apierror.ErrInvalidParameterValue, "The parameter 'children' must not contain empty entries")
		}
	}
	return nil
}

// CreateNexusResponse 创建 nexus 响应
type CreateNexusResponse struct {
	Nexus *Nexus `json:"nexus"`
}

// DestroyNexusRequest 销毁 nexus 请求
// nexus 不存在时为成功的空操作；销毁会连带移除所有 children
type DestroyNexusRequest struct {
	UUID string `json:"uuid" binding:"required"` // nexus UUID
}

// IsValid 校验请求参数
func (r *DestroyNexusRequest) IsValid() error {
	if r.UUID == "" {
		return apierror.WithMessagef(apierror.ErrMissingParameter, "The request must contain the parameter 'uuid'")
	}
	return nil
}

// DestroyNexusResponse 销毁 nexus 响应
type DestroyNexusResponse struct {
	Return bool `json:"return"`
}

// ListNexusRequest 列举 nexus 请求
type ListNexusRequest struct{}

// ListNexusResponse 列举 nexus 响应，按创建顺序返回
type ListNexusResponse struct {
	NexusList []Nexus `json:"nexusList"`
}

// PublishNexusRequest 发布 nexus 请求
type PublishNexusRequest struct {
	UUID string `json:"uuid" binding:"required"` // nexus UUID，必须已存在
}

// IsValid 校验请求参数
func (r *PublishNexusRequest) IsValid() error {
	if r.UUID == "" {
		return apierror.WithMessagef(apierror.ErrMissingParameter, "The request must contain the parameter 'uuid'")
	}
	return nil
}

// PublishNexusResponse 发布 nexus 响应
type PublishNexusResponse struct {
	DeviceURI string `json:"deviceUri"` // 发布后的设备 URI
}

// UnpublishNexusRequest 取消发布 nexus 请求
type UnpublishNexusRequest struct {
	UUID string `json:"uuid" binding:"required"` // nexus UUID，必须已存在
}

// IsValid 校验请求参数
func (r *UnpublishNexusRequest) IsValid() error {
	if r.UUID == "" {
		return apierror.WithMessagef(apierror.ErrMissingParameter, "The request must contain the parameter 'uuid'")
	}
	return nil
}

// UnpublishNexusResponse 取消发布 nexus 响应
type UnpublishNexusResponse struct {
	Return bool `json:"return"`
}

// AddChildRequest 添加 child 请求
// 新加入的 child 需要重建才能一致，初始化为 DEGRADED
// 幂等：URI 已存在时不做修改，但仍返回 DEGRADED 的 child 描述
type AddChildRequest struct {
	UUID string `json:"uuid" binding:"required"` // nexus UUID，必须已存在
	URI  string `json:"uri"  binding:"required"` // child 来源 URI
}

// IsValid 校验请求参数
func (r *AddChildRequest) IsValid() error {
	if r.UUID == "" {
		return apierror.WithMessagef(apierror.ErrMissingParameter, "The request must contain the parameter 'uuid'")
	}
	if r.URI == "" {
		return apierror.WithMessagef(apierror.ErrMissingParameter, "The request must contain the parameter 'uri'")
	}
	return nil
}

// AddChildResponse 添加 child 响应
type AddChildResponse struct {
	Child *Child `json:"child"`
}

// RemoveChildRequest 移除 child 请求
// URI 不存在时为成功的空操作
type RemoveChildRequest struct {
	UUID string `json:"uuid" binding:"required"` // nexus UUID，必须已存在
	URI  string `json:"uri"  binding:"required"` // child 来源 URI
}

// IsValid 校验请求参数
func (r *RemoveChildRequest) IsValid() error {
	if r.UUID == "" {
		return apierror.WithMessagef(apierror.ErrMissingParameter, "The request must contain the parameter 'uuid'")
	}
	if r.URI == "" {
		return apierror.WithMessagef(apierror.ErrMissingParameter, "The request must contain the parameter 'uri'")
	}
	return nil
}

// RemoveChildResponse 移除 child 响应
type RemoveChildResponse struct {
	Return bool `json:"return"`
}

// ChildOperationRequest child 操作请求
// 预留接口，当前不做任何操作
type ChildOperationRequest struct {
	UUID   string `json:"uuid"`   // nexus UUID
	URI    string `json:"uri"`    // child 来源 URI
	Action int    `json:"action"` // 操作类型，预留
}

// ChildOperationResponse child 操作响应
type ChildOperationResponse struct {
	Return bool `json:"return"`
}
