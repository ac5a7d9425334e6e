package ai

import (
	"fmt"
	"strings"

	"github.com/vclog/vclog/commit"
)

const zhPromptFormat = `请总结以下 git commits 生成 changelog，版本从 %s 到 %s。
要求：1. 按类型分组（Features/Bug Fixes/Performance/Chores 等）2. 合并相似的提交 3. 用简洁的中文描述 4. 使用 emoji 前缀
Commits:
%s`

const enPromptFormat = `Summarize the following git commits into a changelog, from version %s to %s.
Requirements: 1. Group by type (Features/Bug Fixes/Performance/Chores etc.) 2. Merge similar commits 3. Use concise English 4. Use emoji prefixes
Commits:
%s`

// BuildPrompt renders the summarization prompt in the configured output
// language. The category labels in plain rendering are unaffected by lang.
func BuildPrompt(lang string, pair *commit.VersionPair, subjects []string) string {
	format := zhPromptFormat
	if lang == "en" {
		format = enPromptFormat
	}
	return fmt.Sprintf(format, pair.Older, pair.Newer, strings.Join(subjects, "\n"))
}
