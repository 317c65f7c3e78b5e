// Package ginx 提供 gin handler 的泛型适配器
//
// 每个操作的 handler 都是一个强类型函数：
//
//	func (p *Pool) CreatePool(ctx *gin.Context, req *entity.CreatePoolRequest) (*entity.CreatePoolResponse, error)
//
// 通过 ginx.Handle 适配为 gin.HandlerFunc：
//
//	router.POST("/create", ginx.Handle(p.CreatePool))
//
// 适配器负责：
//
//  1. 绑定请求参数（XML/JSON body > URI > Query > Form）
//  2. 调用请求结构体的 IsValid() 方法（如果实现了）
//  3. 调用 handler
//  4. 渲染响应（请求是 XML 则响应 XML，否则 JSON）
//  5. 错误渲染为 apierror.ErrorResponse，HTTP 状态码取自错误定义
package ginx
