package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	appQuestion "github.com/askroom/askroom/pkg/app/question"
	creatorMocks "github.com/askroom/askroom/pkg/app/question/mocks"
	"github.com/askroom/askroom/pkg/domain"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newQuestionTestApp(creator *creatorMocks.Creator) *fiber.App {
	logger := logrus.New()
	logger.SetLevel(logrus.FatalLevel)

	handler := NewCreateQuestionHandler(logger, creator)

	app := fiber.New()
	app.Post("/rooms/:roomId/questions", handler.Handle)
	return app
}

func TestCreateQuestionHandler_Created(t *testing.T) {
	creator := new(creatorMocks.Creator)
	app := newQuestionTestApp(creator)

	roomID := uuid.New()
	questionID := uuid.New()
	answer := "heavy rain delayed the event"

	creator.On("Create", mock.Anything, roomID, "why was the delay?").
		Return(&appQuestion.CreateResult{QuestionID: questionID, Answer: &answer}, nil)

	body, err := json.Marshal(map[string]string{"question": "why was the delay?"})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", fmt.Sprintf("/rooms/%s/questions", roomID), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var payload struct {
		QuestionID string  `json:"questionId"`
		Answer     *string `json:"answer"`
	}
	require.NoError(t, json.Unmarshal(respBody, &payload))
	assert.Equal(t, questionID.String(), payload.QuestionID)
	require.NotNil(t, payload.Answer)
	assert.Equal(t, answer, *payload.Answer)
}

func TestCreateQuestionHandler_NullAnswer(t *testing.T) {
	creator := new(creatorMocks.Creator)
	app := newQuestionTestApp(creator)

	roomID := uuid.New()
	questionID := uuid.New()

	creator.On("Create", mock.Anything, roomID, "what was discussed?").
		Return(&appQuestion.CreateResult{QuestionID: questionID, Answer: nil}, nil)

	body, err := json.Marshal(map[string]string{"question": "what was discussed?"})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", fmt.Sprintf("/rooms/%s/questions", roomID), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var payload struct {
		QuestionID string  `json:"questionId"`
		Answer     *string `json:"answer"`
	}
	require.NoError(t, json.Unmarshal(respBody, &payload))
	assert.NotEmpty(t, payload.QuestionID)
	assert.Nil(t, payload.Answer)
}

func TestCreateQuestionHandler_EmptyQuestionRejectedBeforePipeline(t *testing.T) {
	creator := new(creatorMocks.Creator)
	app := newQuestionTestApp(creator)

	body, err := json.Marshal(map[string]string{"question": ""})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", fmt.Sprintf("/rooms/%s/questions", uuid.New()), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	creator.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateQuestionHandler_InvalidRoomID(t *testing.T) {
	creator := new(creatorMocks.Creator)
	app := newQuestionTestApp(creator)

	body, err := json.Marshal(map[string]string{"question": "why was the delay?"})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/rooms/not-a-uuid/questions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	creator.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateQuestionHandler_UpstreamFailure(t *testing.T) {
	creator := new(creatorMocks.Creator)
	app := newQuestionTestApp(creator)

	roomID := uuid.New()
	creator.On("Create", mock.Anything, roomID, mock.Anything).
		Return(nil, domain.NewUpstreamError("embedding", fmt.Errorf("timeout")))

	body, err := json.Marshal(map[string]string{"question": "why was the delay?"})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", fmt.Sprintf("/rooms/%s/questions", roomID), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
}

func TestCreateQuestionHandler_PersistenceFailure(t *testing.T) {
	creator := new(creatorMocks.Creator)
	app := newQuestionTestApp(creator)

	roomID := uuid.New()
	creator.On("Create", mock.Anything, roomID, mock.Anything).
		Return(nil, domain.NewPersistenceError("question", fmt.Errorf("no row created")))

	body, err := json.Marshal(map[string]string{"question": "why was the delay?"})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", fmt.Sprintf("/rooms/%s/questions", roomID), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
