package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"studentmgmt/internal/config"
	"studentmgmt/internal/db"
	"studentmgmt/internal/model"
	"studentmgmt/pkg/logging"
)

// Seed data shapes as served by INITIAL_DATA_URL.
type seedLesson struct {
	Date  string          `json:"date"`
	Hours decimal.Decimal `json:"hours"`
}

type seedStudent struct {
	FirstName string       `json:"first_name"`
	LastName  string       `json:"last_name"`
	Lessons   []seedLesson `json:"lessons"`
}

type seedUser struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	Password  string `json:"password"`
}

type seedData struct {
	Students []seedStudent `json:"students"`
	Users    []seedUser    `json:"users"`
}

func main() {
	logging.Setup()
	slog.Info("starting seed script")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		slog.Error("connect database", "err", err)
		os.Exit(1)
	}

	if err := gormDB.AutoMigrate(
		&model.Location{},
		&model.Subject{},
		&model.Grade{},
		&model.Student{},
		&model.Lesson{},
		&model.Payment{},
		&model.User{},
	); err != nil {
		slog.Error("auto-migrate", "err", err)
		os.Exit(1)
	}

	var existing int64
	if err := gormDB.Model(&model.Student{}).Count(&existing).Error; err != nil {
		slog.Error("count students", "err", err)
		os.Exit(1)
	}
	if existing > 0 {
		slog.Info("database already has students, nothing to do", "count", existing)
		return
	}

	location := os.Getenv("INITIAL_DATA_URL")
	if location == "" {
		slog.Info("INITIAL_DATA_URL not set, seeding system tables only")
	}

	var data seedData
	if location != "" {
		loaded, err := loadSeedData(location)
		if err != nil {
			slog.Error("load seed data", "url", location, "err", err)
			os.Exit(1)
		}
		data = *loaded
	}

	if err := seed(gormDB, &data); err != nil {
		slog.Error("seed", "err", err)
		os.Exit(1)
	}
	slog.Info("seed completed", "students", len(data.Students), "users", len(data.Users))
}

// loadSeedData reads the sample data set from an http(s) URL or a local file.
func loadSeedData(location string) (*seedData, error) {
	var body []byte
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		resp, err := http.Get(location)
		if err != nil {
			return nil, fmt.Errorf("fetch: %w", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("fetch: status %d", resp.StatusCode)
		}
		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("read body: %w", err)
		}
	} else {
		var err error
		body, err = os.ReadFile(location)
		if err != nil {
			return nil, fmt.Errorf("read file: %w", err)
		}
	}

	var data seedData
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("parse JSON: %w", err)
	}
	return &data, nil
}

func seed(gormDB *gorm.DB, data *seedData) error {
	for _, ss := range data.Students {
		// Sample students get a plausible random rate; their seeded lessons
		// snapshot it, same as lessons created through the API would.
		fee := decimal.NewFromInt(int64(rand.Intn(10)+1) * 5)
		student := model.Student{
			FirstName:  ss.FirstName,
			LastName:   ss.LastName,
			CurrentFee: fee,
		}

		var minDate, maxDate time.Time
		lessons := make([]model.Lesson, 0, len(ss.Lessons))
		for _, sl := range ss.Lessons {
			date, err := parseDate(sl.Date)
			if err != nil {
				return fmt.Errorf("student %s %s: %w", ss.FirstName, ss.LastName, err)
			}
			if minDate.IsZero() || date.Before(minDate) {
				minDate = date
			}
			if maxDate.IsZero() || date.After(maxDate) {
				maxDate = date
			}
			lessons = append(lessons, model.Lesson{
				Date:  date,
				Hours: sl.Hours,
				Fee:   decimal.NewNullDecimal(fee),
			})
		}

		// The academic year starts roughly 8 months before the last lesson.
		if !maxDate.IsZero() {
			student.YearStart = maxDate.AddDate(0, -8, 0).Year()
		} else {
			student.YearStart = time.Now().Year()
		}

		if err := gormDB.Create(&student).Error; err != nil {
			return fmt.Errorf("create student: %w", err)
		}
		for i := range lessons {
			lessons[i].StudentID = student.ID
		}
		if len(lessons) > 0 {
			if err := gormDB.Create(&lessons).Error; err != nil {
				return fmt.Errorf("create lessons: %w", err)
			}
		}
	}

	for _, su := range data.Users {
		hashed, err := bcrypt.GenerateFromPassword([]byte(su.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		user := model.User{
			FirstName:    su.FirstName,
			LastName:     su.LastName,
			Email:        su.Email,
			Username:     su.Username,
			PasswordHash: string(hashed),
		}
		if err := gormDB.Create(&user).Error; err != nil {
			return fmt.Errorf("create user %s: %w", su.Username, err)
		}
	}

	return seedLookups(gormDB)
}

// seedLookups fills the system tables with the default sample values when empty.
func seedLookups(gormDB *gorm.DB) error {
	var count int64
	if err := gormDB.Model(&model.Location{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, name := range []string{"Σύρος", "Νάξος"} {
		if err := gormDB.Create(&model.Location{Name: name}).Error; err != nil {
			return fmt.Errorf("create location: %w", err)
		}
	}
	for _, name := range []string{"Βιολογία", "Χημεία"} {
		if err := gormDB.Create(&model.Subject{Name: name}).Error; err != nil {
			return fmt.Errorf("create subject: %w", err)
		}
	}
	for _, name := range []string{"Α' Λυκείου", "Β' Λυκείου", "Γ' Λυκείου", "Απόφοιτος"} {
		if err := gormDB.Create(&model.Grade{Name: name}).Error; err != nil {
			return fmt.Errorf("create grade: %w", err)
		}
	}
	return nil
}

func parseDate(raw string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", raw)
}
