// Package tessellum 将 Markdown 文档快照转换为实时预览所需的装饰指令。
//
// 这个包为宿主编辑器提供 live-preview 渲染支持：扫描原始文本中的标记区域
//（行内/块级数学公式、维基链接、分割线、结构语法标记），解决区域间的
// 重叠与优先级，根据光标位置决定每个区域以 widget 还是原文呈现，并输出
// 宿主渲染面可以直接执行的替换/标注指令。
//
// 核心功能：
//   - 单遍数学扫描：$$...$$ 与 $...$ 在一次扫描中消解，转义安全
//   - 维基链接扫描与 Note Index 存在性检查
//   - 确定性的重叠消解（固定优先级，重算之间不闪烁）
//   - 光标感知抑制：选区内的区域显示原文
//   - 视口受限的增量重算
//
// 主要 API：
//   - Decorate(): 一次性完整管线，返回装饰集
//   - Engine: 增量控制器，由宿主的变更通知驱动
//   - OpenVault(): 打开笔记库索引，用于链接解析与反链查询
//
// 示例：
//
//	idx, _ := tessellum.OpenVault("/path/to/vault", tessellum.IndexOptions{})
//	defer idx.Close()
//
//	eng := tessellum.NewEngine(tessellum.WithNoteIndex(idx))
//	set := eng.OnChange(
//	    tessellum.ChangeEvent{DocChanged: true},
//	    tessellum.Snapshot{Text: text, Selection: sel},
//	)
//	for _, in := range set.Instructions {
//	    // 交给渲染面执行
//	}
package tessellum

import (
	"github.com/JorgeCarriles-Uniovi/Tessellum/internal/index"
)

// IndexOptions 配置 OpenVault。
type IndexOptions = index.Options

// IndexStats 记录一次索引全量同步的结果。
type IndexStats = index.IndexStats

// Link 是笔记链接图的一条边。
type Link = index.Link

// NoteIndex 笔记库索引。
type NoteIndex = index.NoteIndex

// OpenVault 打开笔记库索引。
//
// 索引在内存中维护 文件名 -> 路径 的映射供同步解析；配置了 DBPath 时，
// 还会把解析后的链接边持久化到 sqlite，供反链与链接图查询。
func OpenVault(vaultPath string, opts IndexOptions) (*NoteIndex, error) {
	if opts.Logger == nil {
		opts.Logger = Logger
	}
	return index.Open(vaultPath, opts)
}

// 索引相关的哨兵错误。
var (
	ErrVaultNotFound = index.ErrVaultNotFound
	ErrIndexClosed   = index.ErrIndexClosed
	ErrNoDatabase    = index.ErrNoDatabase
)
