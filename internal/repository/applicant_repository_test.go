package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/volunhub/internal/constants"
	"github.com/volunhub/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupApplicantRepoTest(t *testing.T) *GormApplicantRepository {
	t.Helper()
	dsn := fmt.Sprintf("file:applicant_repo_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Applicant{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewApplicantRepository(db)
}

func seedApplicant(t *testing.T, repo *GormApplicantRepository, name, email string, interests []string, reviewed bool) *models.Applicant {
	t.Helper()
	applicant := &models.Applicant{
		FullName:     name,
		Email:        email,
		Interests:    models.StringArray(interests),
		Availability: constants.AvailabilityWeekends,
		Reviewed:     reviewed,
	}
	if err := repo.Create(applicant); err != nil {
		t.Fatalf("create applicant failed: %v", err)
	}
	return applicant
}

func TestApplicantRepositoryGetByIDNotFound(t *testing.T) {
	repo := setupApplicantRepoTest(t)

	applicant, err := repo.GetByID(42)
	if err != nil {
		t.Fatalf("get by id failed: %v", err)
	}
	if applicant != nil {
		t.Fatalf("expected nil for missing applicant, got %+v", applicant)
	}
}

func TestApplicantRepositoryEmailUnique(t *testing.T) {
	repo := setupApplicantRepoTest(t)
	seedApplicant(t, repo, "张三", "dup@example.com", []string{constants.InterestTech}, false)

	err := repo.Create(&models.Applicant{
		FullName:     "李四",
		Email:        "dup@example.com",
		Interests:    models.StringArray{constants.InterestTech},
		Availability: constants.AvailabilityWeekends,
	})
	if err == nil {
		t.Fatalf("expected unique constraint violation for duplicate email")
	}
}

func TestApplicantRepositoryListFilters(t *testing.T) {
	repo := setupApplicantRepoTest(t)
	seedApplicant(t, repo, "Alice Chen", "alice@example.com", []string{constants.InterestEducation, constants.InterestTech}, false)
	seedApplicant(t, repo, "Bob Liu", "bob@example.com", []string{constants.InterestHealthcare}, true)
	seedApplicant(t, repo, "Carol Wang", "carol@example.com", []string{constants.InterestEducation}, true)

	// 搜索姓名/邮箱，大小写不敏感
	list, total, err := repo.List(ApplicantListFilter{Page: 1, PageSize: 20, Search: "ALICE"})
	if err != nil {
		t.Fatalf("list by search failed: %v", err)
	}
	if total != 1 || len(list) != 1 || list[0].Email != "alice@example.com" {
		t.Fatalf("search filter mismatch: total=%d list=%+v", total, list)
	}

	// 按志愿方向过滤
	_, total, err = repo.List(ApplicantListFilter{Page: 1, PageSize: 20, Interest: constants.InterestEducation})
	if err != nil {
		t.Fatalf("list by interest failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("interest filter want 2 got %d", total)
	}

	// 按审核状态过滤
	reviewed := true
	_, total, err = repo.List(ApplicantListFilter{Page: 1, PageSize: 20, Reviewed: &reviewed})
	if err != nil {
		t.Fatalf("list by reviewed failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("reviewed filter want 2 got %d", total)
	}

	// 组合过滤
	_, total, err = repo.List(ApplicantListFilter{Page: 1, PageSize: 20, Interest: constants.InterestEducation, Reviewed: &reviewed})
	if err != nil {
		t.Fatalf("list by combined filter failed: %v", err)
	}
	if total != 1 {
		t.Fatalf("combined filter want 1 got %d", total)
	}
}

func TestApplicantRepositoryInterestFilterExactMember(t *testing.T) {
	repo := setupApplicantRepoTest(t)
	seedApplicant(t, repo, "Dora", "dora@example.com", []string{constants.InterestTech}, false)

	// "Tech" 不应命中不存在的方向，也不应被子串误匹配
	_, total, err := repo.List(ApplicantListFilter{Page: 1, PageSize: 20, Interest: "Te"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 0 {
		t.Fatalf("partial interest should not match, got %d", total)
	}
}

func TestApplicantRepositoryToggleReviewed(t *testing.T) {
	repo := setupApplicantRepoTest(t)
	created := seedApplicant(t, repo, "Eve", "eve@example.com", []string{constants.InterestOutreach}, false)

	toggled, err := repo.ToggleReviewed(created.ID)
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if toggled == nil || !toggled.Reviewed {
		t.Fatalf("first toggle should set reviewed=true, got %+v", toggled)
	}

	toggled, err = repo.ToggleReviewed(created.ID)
	if err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}
	if toggled == nil || toggled.Reviewed {
		t.Fatalf("second toggle should set reviewed=false, got %+v", toggled)
	}
}

func TestApplicantRepositoryToggleReviewedNotFound(t *testing.T) {
	repo := setupApplicantRepoTest(t)

	toggled, err := repo.ToggleReviewed(9999)
	if err != nil {
		t.Fatalf("toggle missing id failed: %v", err)
	}
	if toggled != nil {
		t.Fatalf("toggle missing id should return nil, got %+v", toggled)
	}
}

func TestApplicantRepositoryCounts(t *testing.T) {
	repo := setupApplicantRepoTest(t)
	seedApplicant(t, repo, "F1", "f1@example.com", []string{constants.InterestTech}, true)
	seedApplicant(t, repo, "F2", "f2@example.com", []string{constants.InterestTech, constants.InterestEducation}, false)

	total, reviewed, err := repo.CountByReviewed()
	if err != nil {
		t.Fatalf("count by reviewed failed: %v", err)
	}
	if total != 2 || reviewed != 1 {
		t.Fatalf("want total=2 reviewed=1 got total=%d reviewed=%d", total, reviewed)
	}

	count, err := repo.CountByInterest(constants.InterestTech)
	if err != nil {
		t.Fatalf("count by interest failed: %v", err)
	}
	if count != 2 {
		t.Fatalf("interest count want 2 got %d", count)
	}
}
