package postgres

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmockv3 "github.com/pashagolub/pgxmock/v3"

	domainErrors "github.com/polkiloo/freelancehub/internal/domain/errors"
	"github.com/polkiloo/freelancehub/internal/domain/model"
)

var (
	profileCols  = []string{"id", "user_id", "specialization", "skills", "experience", "description", "created_at", "updated_at"}
	showcaseCols = []string{"id", "freelancer_id", "title", "description", "images", "tags", "created_at", "updated_at"}
	summaryCols  = append(append([]string{}, profileCols...), "name", "email", "phone", "bio", "avg_rating", "review_count")
)

func TestProfileRepository(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &profileRepository{storage: storage}

	now := time.Now()
	profile := &model.FreelancerProfile{ID: uuid.New(), UserID: uuid.New(), Specialization: "Design", Experience: 3, Description: "Logos"}
	row := func(skills []string) *pgxmockv3.Rows {
		return pgxmockv3.NewRows(profileCols).AddRow(profile.ID, profile.UserID, "Design", skills, 3, "Logos", now, now)
	}

	// a nil skill list is stored as an empty array
	mock.ExpectQuery("INSERT INTO freelancer_profiles").
		WithArgs(profile.ID, profile.UserID, "Design", []string{}, 3, "Logos").
		WillReturnRows(row([]string{}))
	created, err := repo.Create(context.Background(), profile)
	if err != nil || created.UserID != profile.UserID || created.Skills == nil {
		t.Fatalf("unexpected profile: %+v err=%v", created, err)
	}

	mock.ExpectQuery("INSERT INTO freelancer_profiles").WithArgs(anyArgs(6)...).WillReturnError(&pgconn.PgError{Code: "23505"})
	if _, err := repo.Create(context.Background(), profile); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected already exists, got %v", err)
	}

	mock.ExpectQuery("FROM freelancer_profiles WHERE user_id=").WithArgs(profile.UserID).WillReturnRows(row([]string{"figma", "branding"}))
	got, err := repo.GetByUserID(context.Background(), profile.UserID)
	if err != nil || len(got.Skills) != 2 || got.Skills[1] != "branding" {
		t.Fatalf("unexpected profile: %+v err=%v", got, err)
	}

	mock.ExpectQuery("FROM freelancer_profiles WHERE user_id=").WithArgs(profile.UserID).WillReturnError(pgx.ErrNoRows)
	if _, err := repo.GetByUserID(context.Background(), profile.UserID); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	profile.Skills = []string{"figma"}
	mock.ExpectQuery("UPDATE freelancer_profiles").
		WithArgs("Design", []string{"figma"}, 3, "Logos", profile.UserID).
		WillReturnRows(row([]string{"figma"}))
	if _, err := repo.Update(context.Background(), profile); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mock.ExpectQuery("UPDATE freelancer_profiles").WithArgs(anyArgs(5)...).WillReturnError(pgx.ErrNoRows)
	if _, err := repo.Update(context.Background(), profile); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	mock.ExpectExec("DELETE FROM freelancer_profiles").WithArgs(profile.UserID).WillReturnResult(pgxmockv3.NewResult("DELETE", 1))
	if err := repo.DeleteByUserID(context.Background(), profile.UserID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mock.ExpectExec("DELETE FROM freelancer_profiles").WithArgs(profile.UserID).WillReturnResult(pgxmockv3.NewResult("DELETE", 0))
	if err := repo.DeleteByUserID(context.Background(), profile.UserID); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	mock.ExpectExec("DELETE FROM freelancer_profiles").WithArgs(profile.UserID).WillReturnError(errors.New("boom"))
	if err := repo.DeleteByUserID(context.Background(), profile.UserID); err == nil || errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected storage error, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestShowcaseRepository(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &showcaseRepository{storage: storage}

	now := time.Now()
	sc := &model.ProjectShowcase{ID: uuid.New(), FreelancerID: uuid.New(), Title: "Shop", Description: "Store front", Tags: []string{"web"}}
	row := func(title string) *pgxmockv3.Rows {
		return pgxmockv3.NewRows(showcaseCols).AddRow(sc.ID, sc.FreelancerID, title, "Store front", []string{}, []string{"web"}, now, now)
	}

	mock.ExpectQuery("INSERT INTO project_showcases").
		WithArgs(sc.ID, sc.FreelancerID, "Shop", "Store front", []string{}, []string{"web"}).
		WillReturnRows(row("Shop"))
	created, err := repo.Create(context.Background(), sc)
	if err != nil || created.Title != "Shop" || len(created.Tags) != 1 {
		t.Fatalf("unexpected showcase: %+v err=%v", created, err)
	}

	mock.ExpectQuery("FROM project_showcases WHERE id=").WithArgs(sc.ID).WillReturnRows(row("Shop"))
	if _, err := repo.GetByID(context.Background(), sc.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mock.ExpectQuery("FROM project_showcases WHERE id=").WithArgs(sc.ID).WillReturnError(pgx.ErrNoRows)
	if _, err := repo.GetByID(context.Background(), sc.ID); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	mock.ExpectQuery("FROM project_showcases WHERE freelancer_id=.*ORDER BY created_at DESC").WithArgs(sc.FreelancerID).
		WillReturnRows(pgxmockv3.NewRows(showcaseCols).
			AddRow(uuid.New(), sc.FreelancerID, "Newer", "", []string{}, []string{}, now, now).
			AddRow(sc.ID, sc.FreelancerID, "Shop", "Store front", []string{}, []string{"web"}, now, now))
	list, err := repo.ListByFreelancer(context.Background(), sc.FreelancerID)
	if err != nil || len(list) != 2 || list[0].Title != "Newer" {
		t.Fatalf("unexpected list: %+v err=%v", list, err)
	}

	mock.ExpectQuery("FROM project_showcases WHERE freelancer_id=").WithArgs(sc.FreelancerID).WillReturnRows(pgxmockv3.NewRows(showcaseCols))
	empty, err := repo.ListByFreelancer(context.Background(), sc.FreelancerID)
	if err != nil || empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v err=%v", empty, err)
	}

	mock.ExpectQuery("FROM project_showcases WHERE freelancer_id=").WithArgs(sc.FreelancerID).WillReturnError(errors.New("boom"))
	if _, err := repo.ListByFreelancer(context.Background(), sc.FreelancerID); err == nil {
		t.Fatal("expected error")
	}

	sc.Title = "Shop v2"
	mock.ExpectQuery("UPDATE project_showcases").
		WithArgs("Shop v2", "Store front", []string{}, []string{"web"}, sc.ID).
		WillReturnRows(row("Shop v2"))
	updated, err := repo.Update(context.Background(), sc)
	if err != nil || updated.Title != "Shop v2" {
		t.Fatalf("unexpected showcase: %+v err=%v", updated, err)
	}

	mock.ExpectQuery("UPDATE project_showcases").WithArgs(anyArgs(5)...).WillReturnError(pgx.ErrNoRows)
	if _, err := repo.Update(context.Background(), sc); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	mock.ExpectExec("DELETE FROM project_showcases").WithArgs(sc.ID).WillReturnResult(pgxmockv3.NewResult("DELETE", 1))
	if err := repo.Delete(context.Background(), sc.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mock.ExpectExec("DELETE FROM project_showcases").WithArgs(sc.ID).WillReturnResult(pgxmockv3.NewResult("DELETE", 0))
	if err := repo.Delete(context.Background(), sc.ID); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestFreelancerDirectorySearch(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &freelancerDirectory{storage: storage}

	now := time.Now()
	userID := uuid.New()
	minExp, maxExp := 2, 10
	minRating, maxRating := 3.5, 5.0
	filter := model.FreelancerFilter{
		Skills:         []string{"Go", "SQL"},
		MinExperience:  &minExp,
		MaxExperience:  &maxExp,
		Specialization: "back_end",
		Search:         "ann",
		MinRating:      &minRating,
		MaxRating:      &maxRating,
	}

	query := regexp.QuoteMeta("AVG(rating)") + ".*" + regexp.QuoteMeta("COUNT(*)") + ".*" +
		regexp.QuoteMeta("lower(skill) = ANY($1)") + ".*" +
		regexp.QuoteMeta("p.experience >= $2 AND p.experience <= $3 AND p.specialization ILIKE $4") + ".*" +
		regexp.QuoteMeta("u.name ILIKE $5 OR p.specialization ILIKE $5") + ".*" +
		regexp.QuoteMeta("COALESCE(r.avg_rating, 0) >= $6 AND COALESCE(r.avg_rating, 0) <= $7") + ".*ORDER BY"
	mock.ExpectQuery(query).
		WithArgs([]string{"go", "sql"}, 2, 10, `%back\_end%`, "%ann%", 3.5, 5.0).
		WillReturnRows(pgxmockv3.NewRows(summaryCols).AddRow(
			uuid.New(), userID, "Backend", []string{"Go"}, 4, "APIs", now, now,
			"Ann", "ann@example.com", "+1", "bio", 4.5, 2))

	list, err := repo.Search(context.Background(), filter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 1 || list[0].Name != "Ann" || list[0].AvgRating != 4.5 || list[0].ReviewCount != 2 || list[0].Profile.UserID != userID {
		t.Fatalf("unexpected result: %+v", list)
	}

	mock.ExpectQuery("FROM freelancer_profiles p").WillReturnRows(pgxmockv3.NewRows(summaryCols))
	all, err := repo.Search(context.Background(), model.FreelancerFilter{})
	if err != nil || all == nil || len(all) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v err=%v", all, err)
	}

	mock.ExpectQuery("FROM freelancer_profiles p").WillReturnError(errors.New("boom"))
	if _, err := repo.Search(context.Background(), model.FreelancerFilter{}); err == nil {
		t.Fatal("expected error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestFreelancerDirectorySummary(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &freelancerDirectory{storage: storage}

	now := time.Now()
	userID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE p.user_id=$1")).WithArgs(userID).WillReturnRows(
		pgxmockv3.NewRows(summaryCols).AddRow(
			uuid.New(), userID, "Design", []string{"figma"}, 0, "", now, now,
			"Bo", "bo@example.com", "", "", 0.0, 0))
	summary, err := repo.Summary(context.Background(), userID)
	if err != nil || summary.Name != "Bo" || summary.AvgRating != 0 || summary.ReviewCount != 0 {
		t.Fatalf("unexpected summary: %+v err=%v", summary, err)
	}

	mock.ExpectQuery(regexp.QuoteMeta("WHERE p.user_id=$1")).WithArgs(userID).WillReturnError(pgx.ErrNoRows)
	if _, err := repo.Summary(context.Background(), userID); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestDirectoryWhere(t *testing.T) {
	where, args := directoryWhere(model.FreelancerFilter{})
	if where != "" || args != nil {
		t.Fatalf("expected no clause, got %q %v", where, args)
	}

	where, args = directoryWhere(model.FreelancerFilter{Search: `50%`})
	if strings.Count(where, "$1") != 4 || strings.Contains(where, "?") {
		t.Fatalf("search must bind one argument four times: %q", where)
	}
	if len(args) != 1 || args[0] != `%50\%%` {
		t.Fatalf("unexpected args %v", args)
	}
}
