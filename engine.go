package tessellum

// ChangeEvent describes what changed since the last recompute, as reported
// by the host editor's change-notification hook.
type ChangeEvent struct {
	DocChanged       bool
	ViewportChanged  bool
	SelectionChanged bool
}

// Engine 增量重算控制器。
//
// 宿主在每次文档/视口/选区变更时调用 OnChange；Engine 决定是否需要重算，
// 并整体替换缓存的装饰集（从不原地修补）。
//
// 重算策略：
//   - DocChanged || ViewportChanged: 完整管线（扫描范围限于视口窗口）
//   - 仅 SelectionChanged: 复用缓存的已消解区域，只重跑抑制与物化——
//     光标移入/移出一个区域会改变它的呈现方式而不改变文档
//   - 都未变: 原样返回上一个装饰集
//
// Engine 不是并发安全的：它假定宿主的单线程事件派发，每次调用运行到完成。
type Engine struct {
	opts     *DecorateOptions
	resolved []Span
	last     *DecorationSet
}

// NewEngine 创建控制器。
func NewEngine(opts ...Option) *Engine {
	return &Engine{opts: applyOptions(opts...)}
}

// OnChange 处理一次变更通知，返回当前装饰集。
//
// The returned set is either the cached one (nothing relevant changed) or a
// freshly computed replacement; stale results are never merged into.
func (e *Engine) OnChange(ev ChangeEvent, snap Snapshot) *DecorationSet {
	if ev.DocChanged || ev.ViewportChanged || e.last == nil {
		resolved, set := runPipeline(snap, e.opts)
		e.resolved = resolved
		e.last = set
		return set
	}
	if ev.SelectionChanged {
		set := finishPipeline(e.resolved, snap, e.opts)
		e.last = set
		return set
	}
	return e.last
}

// Current 返回最近一次计算的装饰集（尚未计算时为 nil）。
func (e *Engine) Current() *DecorationSet {
	return e.last
}

// Invalidate 丢弃缓存，下一次 OnChange 必然完整重算。
// 宿主在切换文档时调用。
func (e *Engine) Invalidate() {
	e.resolved = nil
	e.last = nil
}
