package entity

// NodePingRequest 节点存活探测请求
type NodePingRequest struct{}

// NodePingResponse 节点存活探测响应
type NodePingResponse struct {
	Node    string `json:"node"`    // 节点名称
	Version string `json:"version"` // 构建版本
}
