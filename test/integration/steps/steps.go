// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/usecase/auth"
	"github.com/habit-tracker/backend/internal/application/usecase/calendar"
	"github.com/habit-tracker/backend/internal/application/usecase/dashboard"
	"github.com/habit-tracker/backend/internal/application/usecase/habit"
	"github.com/habit-tracker/backend/internal/domain/entity"
	"github.com/habit-tracker/backend/internal/infra/server/router"
	"github.com/habit-tracker/backend/internal/integration/adapters"
	integrationcache "github.com/habit-tracker/backend/internal/integration/cache"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/habit-tracker/backend/internal/integration/persistence"
	"github.com/habit-tracker/backend/internal/integration/persistence/model"
	"github.com/habit-tracker/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

type testContext struct {
	uri         string
	headers     map[string]string
	client      *http.Client
	response    *response
	db          *mock.Db
	clock       *mock.Clock
	serverPort  int
	token       string
	habitID     uuid.UUID
	habitIDs    map[string]uuid.UUID
}

type response struct {
	status int
	body   any
}

var serverInit sync.Once
var testDB *mock.Db
var testClock *mock.Clock
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	if testClock == nil {
		testClock = mock.NewClock()
	}

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		clock:      testClock,
		serverPort: testServerPort,
		db: mock.NewDb("habit_tracker", map[string]any{
			"documents": &model.DocumentModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return c, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^the current date is "([^"]*)"$`, test.theCurrentDateIs)

	// Habit setup steps
	ctx.Given(`^a habit exists with name "([^"]*)"$`, test.aHabitExistsWithName)
	ctx.Given(`^a habit exists with name "([^"]*)" and completed dates:$`, test.aHabitExistsWithNameAndCompletedDates)

	// Auth setup steps
	ctx.Given(`^I am signed in as "([^"]*)"$`, test.iAmSignedInAs)
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should have (\d+) elements$`, test.theResponseFieldShouldHaveElements)

	// Database assertion steps
	ctx.Then(`^the habits document should contain (\d+) habits$`, test.theHabitsDocumentShouldContainHabits)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.token = ""
	t.habitID = uuid.Nil
	t.habitIDs = make(map[string]uuid.UUID)
	t.clock.SetCurrentTime(time.Now())

	if t.db != nil {
		_ = t.db.ClearDB()
	}
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			habitRepo := persistence.NewHabitRepository(testDB.DbConn)
			userRepo := persistence.NewUserRepository(testDB.DbConn)

			aggregationCache := integrationcache.NewAggregationCache(mock.NewRedis(), time.Minute)

			passwordService := adapters.NewPasswordService()
			tokenService := adapters.NewTokenService(testJWTSecret, time.Hour)

			listHabitsUseCase := habit.NewListHabitsUseCase(habitRepo, testClock)
			createHabitUseCase := habit.NewCreateHabitUseCase(habitRepo, testClock)
			toggleCompletionUseCase := habit.NewToggleCompletionUseCase(habitRepo, aggregationCache, testClock)
			deleteHabitUseCase := habit.NewDeleteHabitUseCase(habitRepo, aggregationCache)

			dayViewUseCase := calendar.NewGetDayViewUseCase(habitRepo, testClock)
			monthViewUseCase := calendar.NewGetMonthViewUseCase(habitRepo)
			yearViewUseCase := calendar.NewGetYearViewUseCase(habitRepo, aggregationCache)

			summaryUseCase := dashboard.NewGetSummaryUseCase(habitRepo, testClock)

			registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
			loginUseCase := auth.NewLoginUserUseCase(userRepo, tokenService)
			logoutUseCase := auth.NewLogoutUserUseCase(userRepo)

			healthController := controller.NewHealthController(
				func() bool { return testDB != nil && testDB.DbConn != nil },
				func() bool { return true },
			)
			habitController := controller.NewHabitController(
				listHabitsUseCase,
				createHabitUseCase,
				toggleCompletionUseCase,
				deleteHabitUseCase,
			)
			calendarController := controller.NewCalendarController(
				dayViewUseCase,
				monthViewUseCase,
				yearViewUseCase,
				testClock,
			)
			dashboardController := controller.NewDashboardController(summaryUseCase)
			authController := controller.NewAuthController(
				registerUseCase,
				loginUseCase,
				logoutUseCase,
			)

			loginRateLimiter := middleware.NewRateLimiter()
			authMiddleware := middleware.NewAuthMiddleware(tokenService)

			r := router.NewRouter(
				healthController,
				authController,
				habitController,
				calendarController,
				dashboardController,
				loginRateLimiter,
				authMiddleware,
			)
			engine := r.Setup("test")

			server := &http.Server{
				Addr:    fmt.Sprintf(":%d", testServerPort),
				Handler: engine,
			}

			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) theCurrentDateIs(date string) error {
	day, err := entity.ParseDay(date)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}
	t.clock.SetCurrentTime(day)
	return nil
}

func (t *testContext) aHabitExistsWithName(name string) error {
	return t.createHabit(name, nil)
}

func (t *testContext) aHabitExistsWithNameAndCompletedDates(name string, dates *godog.DocString) error {
	var completedDates []string
	if err := json.Unmarshal([]byte(dates.Content), &completedDates); err != nil {
		return fmt.Errorf("completed dates must be a JSON array: %w", err)
	}
	return t.createHabit(name, completedDates)
}

func (t *testContext) createHabit(name string, completedDates []string) error {
	repo := persistence.NewHabitRepository(t.db.DbConn)
	ctx := context.Background()

	habits, err := repo.LoadAll(ctx)
	if err != nil {
		return err
	}

	h := entity.NewHabit(name, "", entity.DefaultHabitColor)
	h.CreatedAt = t.clock.Now().UTC()
	for _, d := range completedDates {
		h.AddCompletedDate(d)
	}
	habits = append(habits, h)

	t.habitID = h.ID
	t.habitIDs[name] = h.ID

	return repo.SaveAll(ctx, habits)
}

func (t *testContext) iAmSignedInAs(email string) error {
	body := fmt.Sprintf(`{"email": %q}`, email)
	if err := t.executeRequest(http.MethodPost, "/api/v1/auth/login", []byte(body)); err != nil {
		return err
	}
	if t.response == nil || t.response.status != http.StatusOK {
		return fmt.Errorf("login failed with status %d: %v", t.response.status, t.response.body)
	}

	responseBody, ok := t.response.body.(map[string]any)
	if !ok {
		return errors.New("login response is not a JSON object")
	}
	token, ok := responseBody["token"].(string)
	if !ok || token == "" {
		return errors.New("login response has no token")
	}
	t.token = token
	return nil
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.token = ""
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replacePlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{habit_id}}", t.habitID.String())
	content = strings.ReplaceAll(content, "{{token}}", t.token)
	for name, id := range t.habitIDs {
		content = strings.ReplaceAll(content, "{{habit_id:"+name+"}}", id.String())
	}
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.uri + path

	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if t.token != "" {
		req.Header.Set("Authorization", "Bearer "+t.token)
	}

	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status: resp.StatusCode,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
	} else {
		t.response.body = responseBody

		// Capture habit ids from create responses so later steps can
		// reference them through placeholders.
		if idStr, ok := responseBody["id"].(string); ok {
			if id, err := uuid.Parse(idStr); err == nil {
				t.habitID = id
				if name, ok := responseBody["name"].(string); ok {
					t.habitIDs[name] = id
				}
			}
		}
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	value, err := t.responseField(field)
	if err != nil {
		return err
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	_, err := t.responseField(field)
	return err
}

func (t *testContext) theResponseFieldShouldHaveElements(field string, quantity int) error {
	value, err := t.responseField(field)
	if err != nil {
		return err
	}

	arr, ok := value.([]any)
	if !ok {
		return fmt.Errorf("field '%s' is not an array: %v", field, value)
	}
	if len(arr) != quantity {
		return fmt.Errorf("field '%s' expected %d elements, got %d", field, quantity, len(arr))
	}
	return nil
}

func (t *testContext) responseField(field string) (any, error) {
	if t.response == nil {
		return nil, errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return nil, fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return value, nil
}

func (t *testContext) theHabitsDocumentShouldContainHabits(quantity int) error {
	var document model.DocumentModel
	err := t.db.DbConn.Where("key = ?", model.DocumentKeyHabits).First(&document).Error
	if err != nil {
		if quantity == 0 {
			return nil
		}
		return fmt.Errorf("habits document not found: %w", err)
	}

	var records []map[string]any
	if err := json.Unmarshal([]byte(document.Payload), &records); err != nil {
		return fmt.Errorf("habits document is not a JSON array: %w", err)
	}
	if len(records) != quantity {
		return fmt.Errorf("expected %d habits in the document, got %d", quantity, len(records))
	}
	return nil
}

// getFieldValue walks a dot-separated path through nested objects and
// arrays, with numeric segments indexing into arrays.
func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
