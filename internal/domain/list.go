package domain

import "strings"

// 分号分隔串只是外部存储/传输格式：入库前 JoinTokens，出库后立刻
// SplitTokens/SplitBullets，业务逻辑里不传裸串。

// SplitBullets 把描述文本拆成要点列表：按分号和换行切分，
// 逐段 trim，空段丢弃。
func SplitBullets(s string) []string {
	if s == "" {
		return nil
	}
	segs := strings.FieldsFunc(s, func(r rune) bool { return r == ';' || r == '\n' })
	var out []string
	for _, seg := range segs {
		if t := strings.TrimSpace(seg); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// SplitTokens 拆分号分隔的词条（技能名等），不含换行语义。
func SplitTokens(s string) []string {
	if s == "" {
		return nil
	}
	segs := strings.Split(s, ";")
	var out []string
	for _, seg := range segs {
		if t := strings.TrimSpace(seg); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// JoinTokens 与 SplitTokens 互逆（对非空、不含分号的词条）。
func JoinTokens(tokens []string) string { return strings.Join(tokens, ";") }

// DedupTokens 保序去重
func DedupTokens(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
