package repository

// ApplicantListFilter 查询申请列表的过滤条件
// 所有条件按逻辑 AND 组合，缺省条件不参与过滤。
type ApplicantListFilter struct {
	Page     int
	PageSize int
	Search   string // 对姓名或邮箱做大小写不敏感的子串匹配
	Interest string // 志愿方向成员匹配
	Reviewed *bool  // 审核状态精确匹配
}
