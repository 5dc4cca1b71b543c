package pkg

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/domain"
)

func testContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func TestSuccess_Envelope(t *testing.T) {
	c, w := testContext(t)

	Success(c, http.StatusCreated, "Patient created successfully!", gin.H{"Patient": gin.H{"id": "abc"}})

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusCreated)
	}

	var resp Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Message != "Patient created successfully!" {
		t.Errorf("Message = %q", resp.Message)
	}
	if resp.HttpCode != http.StatusCreated {
		t.Errorf("HttpCode = %d", resp.HttpCode)
	}
	data, ok := resp.Data.(map[string]any)
	if !ok {
		t.Fatalf("Data = %T, want object", resp.Data)
	}
	if _, ok := data["Patient"]; !ok {
		t.Error("Data missing Patient key")
	}
}

func TestSuccess_NilDataBecomesEmptyObject(t *testing.T) {
	c, w := testContext(t)

	Success(c, http.StatusOK, "ok", nil)

	if !strings.Contains(w.Body.String(), `"Data":{}`) {
		t.Errorf("body = %s, want empty Data object", w.Body.String())
	}
}

func TestError_MapsAppErrorCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "not found", err: domain.ErrNotFound, wantStatus: http.StatusNotFound, wantMsg: "not found"},
		{name: "already exists", err: domain.NewAppError(domain.CodeAlreadyExists, "patient profile already exists", nil), wantStatus: http.StatusConflict, wantMsg: "patient profile already exists"},
		{name: "validation", err: domain.NewAppError(domain.CodeValidation, "body height must be greater than zero", nil), wantStatus: http.StatusBadRequest, wantMsg: "body height must be greater than zero"},
		{name: "operation", err: domain.NewOperationError("enrollment has ended"), wantStatus: http.StatusBadRequest, wantMsg: "enrollment has ended"},
		{name: "unauthorized", err: domain.ErrUnauthorized, wantStatus: http.StatusUnauthorized, wantMsg: "unauthorized"},
		{name: "plain error hides detail", err: errors.New("pq: connection refused"), wantStatus: http.StatusInternalServerError, wantMsg: "internal error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := testContext(t)
			Error(c, tt.err)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			var resp Response
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", resp.Message, tt.wantMsg)
			}
		})
	}
}

func TestParamUUID(t *testing.T) {
	c, _ := testContext(t)
	id := uuid.NewString()
	c.Params = gin.Params{{Key: "userId", Value: id}}

	got, err := ParamUUID(c, "userId")
	if err != nil {
		t.Fatalf("ParamUUID: %v", err)
	}
	if got != id {
		t.Errorf("ParamUUID = %q, want %q", got, id)
	}

	c.Params = gin.Params{{Key: "userId", Value: "not-a-uuid"}}
	if _, err := ParamUUID(c, "userId"); !domain.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestBindAndValidate_UsesJSONTagNamesInErrors(t *testing.T) {
	type payload struct {
		Email string `json:"Email" binding:"required,email"`
	}

	c, w := testContext(t)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"Email":"nope"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	var req payload
	if BindAndValidate(c, &req) {
		t.Fatal("expected validation failure")
	}
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}

	var resp ValidationErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := resp.Errors["Email"]; !ok {
		t.Errorf("Errors = %v, want entry keyed by json tag", resp.Errors)
	}
}

func TestBindAndValidate_AcceptsValidBody(t *testing.T) {
	type payload struct {
		Email string `json:"Email" binding:"required,email"`
	}

	c, _ := testContext(t)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"Email":"asha@example.com"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	var req payload
	if !BindAndValidate(c, &req) {
		t.Fatal("expected bind to succeed")
	}
	if req.Email != "asha@example.com" {
		t.Errorf("Email = %q", req.Email)
	}
}
