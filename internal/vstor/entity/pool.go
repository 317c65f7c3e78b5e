package entity

import "github.com/jimyag/vstor/pkg/apierror"

// 存储池状态
const (
	// PoolStateOnline 在线，本模型中唯一可达的状态
	PoolStateOnline = "ONLINE"
)

// Pool 存储池实体
type Pool struct {
	Name     string   `json:"name"`     // 存储池名称（唯一标识）
	Disks    []string `json:"disks"`    // 后备磁盘 URI 列表（aio:// 前缀）
	State    string   `json:"state"`    // 状态：ONLINE
	Capacity uint64   `json:"capacity"` // 标称总容量（字节）
	Used     uint64   `json:"used"`     // 已用容量（字节）= 基线 + 非 thin 副本大小之和
}

// ============================================================================
// API 请求和响应
// ============================================================================

// CreatePoolRequest 创建存储池请求
// 幂等：同名重复创建返回已存在的存储池，不做任何修改
type CreatePoolRequest struct {
	Name  string   `json:"name"  binding:"required"` // 存储池名称
	Disks []string `json:"disks" binding:"required"` // 后备磁盘路径列表（原始路径，不带 scheme）
}

// IsValid 校验请求参数
func (r *CreatePoolRequest) IsValid() error {
	if r.Name == "" {
		return apierror.WithMessagef(apierror.ErrMissingParameter, "The request must contain the parameter 'name'")
	}
	if len(r.Disks) == 0 {
		return apierror.WithMessagef(apierror.ErrMissingParameter, "The request must contain the parameter 'disks'")
	}
	for _, disk := range r.Disks {
		if disk == "" {
			return apierror.WithMessagef(apierror.ErrInvalidParameterValue, "The parameter 'disks' must not contain empty entries")
		}
	}
	return nil
}

// CreatePoolResponse 创建存储池响应
type CreatePoolResponse struct {
	Pool *Pool `json:"pool"`
}

// DestroyPoolRequest 销毁存储池请求
// 存储池不存在时为成功的空操作；不级联销毁其副本
type DestroyPoolRequest struct {
	Name string `json:"name" binding:"required"` // 存储池名称
}

// IsValid 校验请求参数
func (r *DestroyPoolRequest) IsValid() error {
	if r.Name == "" {
		return apierror.WithMessagef(apierror.ErrMissingParameter, "The request must contain the parameter 'name'")
	}
	return nil
}

// DestroyPoolResponse 销毁存储池响应
type DestroyPoolResponse struct {
	Return bool `json:"return"`
}

// ListPoolsRequest 列举存储池请求
type ListPoolsRequest struct{}

// ListPoolsResponse 列举存储池响应，按创建顺序返回
type ListPoolsResponse struct {
	Pools []Pool `json:"pools"`
}
