package constants

// 志愿方向常量
const (
	InterestEducation        = "Education"
	InterestTech             = "Tech"
	InterestOutreach         = "Outreach"
	InterestHealthcare       = "Healthcare"
	InterestEnvironment      = "Environment"
	InterestCommunityService = "Community Service"
)

// Interests 全部合法志愿方向
var Interests = []string{
	InterestEducation,
	InterestTech,
	InterestOutreach,
	InterestHealthcare,
	InterestEnvironment,
	InterestCommunityService,
}

// 可用时间常量
const (
	AvailabilityFullTime = "Full-time"
	AvailabilityPartTime = "Part-time"
	AvailabilityWeekends = "Weekends"
)

// Availabilities 全部合法可用时间
var Availabilities = []string{
	AvailabilityFullTime,
	AvailabilityPartTime,
	AvailabilityWeekends,
}

// 队列常量
const (
	QueueDefault = "default"
)

// IsValidInterest 判断志愿方向是否合法
func IsValidInterest(interest string) bool {
	for _, candidate := range Interests {
		if candidate == interest {
			return true
		}
	}
	return false
}

// IsValidAvailability 判断可用时间是否合法
func IsValidAvailability(availability string) bool {
	for _, candidate := range Availabilities {
		if candidate == availability {
			return true
		}
	}
	return false
}
