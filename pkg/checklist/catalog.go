package checklist

import (
	"github.com/XiaoConstantine/checklist-go/pkg/errors"
)

// Supported catalog locales.
const (
	LocaleEN = "en"
	LocaleZH = "zh"
)

// CatalogForLocale returns the read-only catalog for the given locale.
func CatalogForLocale(locale string) (*Catalog, error) {
	switch locale {
	case LocaleEN, "":
		return catalogEN, nil
	case LocaleZH:
		return catalogZH, nil
	default:
		return nil, errors.WithFields(errors.New(errors.InvalidInput, "unsupported catalog locale"), errors.Fields{
			"locale": locale,
		})
	}
}

var catalogEN = &Catalog{
	locale: LocaleEN,
	rules: []Rule{
		{
			Keywords: []string{"endpoint", "api"},
			Template: Template{
				Title:     "Publish a stable endpoint",
				Action:    "Deploy and expose a stable HTTP endpoint, then record its URL and method.",
				Verify:    "Call the endpoint and confirm a 200 response and correct payload shape.",
				Artifacts: []string{"stable endpoint"},
			},
		},
		{
			Keywords: []string{"error", "errors", "exception", "exceptions", "handle", "handling"},
			Template: Template{
				Title:     "Complete error handling",
				Action:    "Add error handling for critical flows with explicit error responses.",
				Verify:    "Trigger a failure path and confirm the response includes status and message.",
				Artifacts: []string{},
			},
		},
		{
			Keywords: []string{"document", "docs", "documentation", "spec"},
			Template: Template{
				Title:     "Update documentation",
				Action:    "Write or update documentation covering purpose, steps, and constraints.",
				Verify:    "Check the documentation includes examples and limitation notes.",
				Artifacts: []string{"documentation"},
			},
		},
		{
			Keywords: []string{"description", "describe"},
			Template: Template{
				Title:     "Draft requirement summary",
				Action:    "Summarize key requirements into a short description document.",
				Verify:    "Confirm the summary covers scope, constraints, and key terms.",
				Artifacts: []string{"description document"},
			},
		},
		{
			Keywords: []string{"privacy", "policy"},
			Template: Template{
				Title:     "Prepare Privacy Policy",
				Action:    "Create a Privacy Policy and publish it at a public URL.",
				Verify:    "Open the URL and confirm it is accessible without login.",
				Artifacts: []string{"privacy policy URL"},
			},
		},
		{
			Keywords: []string{"terms", "tos"},
			Template: Template{
				Title:     "Prepare Terms of Service",
				Action:    "Create Terms of Service and publish it at a public URL.",
				Verify:    "Open the URL and confirm it is accessible without login.",
				Artifacts: []string{"terms of service URL"},
			},
		},
	},
	fallback: []Template{
		{
			Title:     "Clarify execution scope",
			Action:    "Define the execution scope and key constraints in a checklist.",
			Verify:    "Verify the scope list includes goals, boundaries, and key terms.",
			Artifacts: []string{},
		},
		{
			Title:     "Break down key tasks",
			Action:    "Split the work into executable tasks and order them.",
			Verify:    "Confirm the task list has a clear sequence and owners.",
			Artifacts: []string{},
		},
		{
			Title:     "Review deliverables",
			Action:    "List expected deliverables and mark their storage locations.",
			Verify:    "Check each deliverable item maps to an actual output.",
			Artifacts: []string{},
		},
		{
			Title:     "Run a quick validation",
			Action:    "Execute a small test run to validate the workflow end-to-end.",
			Verify:    "Confirm outputs are produced and errors are handled clearly.",
			Artifacts: []string{"test output"},
		},
		{
			Title:     "Prepare submission artifacts",
			Action:    "Prepare the demo recording, app description, and required URLs.",
			Verify:    "Open each URL and verify it loads correctly without login.",
			Artifacts: []string{"demo video URL"},
		},
	},
	triggers: []ArtifactTrigger{
		{Keyword: "url", Artifact: "public URL"},
		{Keyword: "demo", Artifact: "demo video URL"},
		{Keyword: "video", Artifact: "demo video URL"},
		{Keyword: "test", Artifact: "test output"},
		{Keyword: "doc", Artifact: "documentation"},
	},
}

var catalogZH = &Catalog{
	locale: LocaleZH,
	rules: []Rule{
		{
			Keywords: []string{"接口", "端点", "api"},
			Template: Template{
				Title:     "发布稳定接口",
				Action:    "部署并暴露一个稳定的 HTTP 接口，记录其 URL 和请求方法。",
				Verify:    "调用该接口，确认返回 200 且响应结构正确。",
				Artifacts: []string{"稳定接口"},
			},
		},
		{
			Keywords: []string{"错误", "异常", "报错", "容错"},
			Template: Template{
				Title:     "完善错误处理",
				Action:    "为关键流程补充错误处理，返回明确的错误响应。",
				Verify:    "触发一次失败路径，确认响应包含状态码和错误信息。",
				Artifacts: []string{},
			},
		},
		{
			Keywords: []string{"文档", "说明"},
			Template: Template{
				Title:     "更新文档",
				Action:    "撰写或更新文档，覆盖目的、步骤与约束。",
				Verify:    "检查文档包含示例和限制说明。",
				Artifacts: []string{"文档"},
			},
		},
		{
			Keywords: []string{"描述", "概述"},
			Template: Template{
				Title:     "起草需求摘要",
				Action:    "将关键需求汇总为一份简短的描述文档。",
				Verify:    "确认摘要覆盖范围、约束与关键术语。",
				Artifacts: []string{"描述文档"},
			},
		},
		{
			Keywords: []string{"隐私", "政策"},
			Template: Template{
				Title:     "准备隐私政策",
				Action:    "编写隐私政策并发布到公开 URL。",
				Verify:    "打开该 URL，确认无需登录即可访问。",
				Artifacts: []string{"隐私政策链接"},
			},
		},
		{
			Keywords: []string{"条款", "服务条款"},
			Template: Template{
				Title:     "准备服务条款",
				Action:    "编写服务条款并发布到公开 URL。",
				Verify:    "打开该 URL，确认无需登录即可访问。",
				Artifacts: []string{"服务条款链接"},
			},
		},
	},
	fallback: []Template{
		{
			Title:     "明确执行范围",
			Action:    "在清单中定义执行范围与关键约束。",
			Verify:    "确认范围列表包含目标、边界与关键术语。",
			Artifacts: []string{},
		},
		{
			Title:     "拆解关键任务",
			Action:    "将工作拆分为可执行任务并排序。",
			Verify:    "确认任务列表有清晰的先后顺序和负责人。",
			Artifacts: []string{},
		},
		{
			Title:     "核对交付物",
			Action:    "列出预期交付物并标注存放位置。",
			Verify:    "检查每个交付物条目都对应实际产出。",
			Artifacts: []string{},
		},
		{
			Title:     "执行快速验证",
			Action:    "运行一次小规模测试，端到端验证流程。",
			Verify:    "确认产出可生成且错误得到清晰处理。",
			Artifacts: []string{"测试输出"},
		},
		{
			Title:     "准备提交材料",
			Action:    "准备演示录屏、应用描述和所需链接。",
			Verify:    "逐一打开链接，确认无需登录即可正常加载。",
			Artifacts: []string{"演示视频链接"},
		},
	},
	triggers: []ArtifactTrigger{
		{Keyword: "链接", Artifact: "公开链接"},
		{Keyword: "url", Artifact: "公开链接"},
		{Keyword: "演示", Artifact: "演示视频链接"},
		{Keyword: "测试", Artifact: "测试输出"},
		{Keyword: "文档", Artifact: "文档"},
	},
}
