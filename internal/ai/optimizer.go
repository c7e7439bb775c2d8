package ai

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"go-resume-builder/internal/core/cache"
)

// 文本类型：摘要走职业教练口径，经历走 STAR 要点口径
const (
	TypeSummary    = "summary"
	TypeExperience = "experience"
)

// Suggestion 缓存与返回的统一载体
type Suggestion struct {
	Optimized string `json:"optimized"`
}

// Optimizer 调 Gemini 优化简历文本，结果按输入哈希短期缓存。
type Optimizer struct {
	client *genai.Client
	model  string
	cache  *cache.Cache
	ttl    time.Duration
	log    *zap.Logger
}

func New(ctx context.Context, apiKey, model string, c *cache.Cache, ttl time.Duration, log *zap.Logger) (*Optimizer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("ai: api key is empty")
	}
	cli, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("ai: new client: %w", err)
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &Optimizer{client: cli, model: model, cache: c, ttl: ttl, log: log}, nil
}

func (o *Optimizer) Close() error { return o.client.Close() }

// Optimize 返回优化后的文本。position 可为空。
func (o *Optimizer) Optimize(ctx context.Context, textType, position, content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", fmt.Errorf("ai: content is empty")
	}
	prompt, err := buildPrompt(textType, position, content)
	if err != nil {
		return "", err
	}

	key := cacheKey(textType, position, content)
	s, err := cache.GetOrLoadJSON[Suggestion](o.cache, ctx, key, o.ttl, func(ctx context.Context) (*Suggestion, error) {
		out, e := o.generate(ctx, prompt)
		if e != nil {
			return nil, e
		}
		return &Suggestion{Optimized: out}, nil
	})
	if err != nil {
		return "", err
	}
	return s.Optimized, nil
}

func (o *Optimizer) generate(ctx context.Context, prompt string) (string, error) {
	m := o.client.GenerativeModel(o.model)
	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		if o.log != nil {
			o.log.Warn("gemini call failed", zap.Error(err))
		}
		return "", fmt.Errorf("ai: generate: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("ai: empty response")
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}
	out := Clean(sb.String())
	if out == "" {
		return "", fmt.Errorf("ai: empty response")
	}
	return out, nil
}

func buildPrompt(textType, position, content string) (string, error) {
	role := position
	if role == "" {
		role = "professional"
	}
	switch textType {
	case TypeSummary:
		return fmt.Sprintf(
			"You are an expert career coach. Rewrite the following resume summary for a %s. "+
				"Make it concise, impactful and achievement-oriented, between 40 and 60 words. "+
				"Return only the rewritten summary with no preamble.\n\nSummary:\n%s",
			role, content), nil
	case TypeExperience:
		return fmt.Sprintf(
			"You are an expert career coach. Rewrite the following work experience description for a %s "+
				"using the STAR method. Return 3 to 5 short achievement statements separated by semicolons. "+
				"Do not use bullet symbols, numbering or line breaks. Return only the statements.\n\nDescription:\n%s",
			role, content), nil
	default:
		return "", fmt.Errorf("ai: unknown text type: %q", textType)
	}
}

// Clean 去掉模型偶发的代码围栏和首尾引号
func Clean(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		// 围栏语言标记占一行
		if i := strings.Index(s, "\n"); i >= 0 && i < 16 {
			s = s[i+1:]
		}
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	s = strings.Trim(s, "\"")
	return strings.TrimSpace(s)
}

func cacheKey(textType, position, content string) string {
	h := sha256.Sum256([]byte(textType + "|" + position + "|" + content))
	return "ai:optimize:" + hex.EncodeToString(h[:8])
}
