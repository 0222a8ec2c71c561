package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/learningmate/examstore/internal/entities"
	"github.com/learningmate/examstore/internal/messages"
)

type ExamsController struct {
	exams ExamsService
	log   zerolog.Logger
}

func NewExamsController(exams ExamsService, log zerolog.Logger) *ExamsController {
	return &ExamsController{
		exams: exams,
		log:   log.With().Str(messages.FieldComponent, "exams_controller").Logger(),
	}
}

// createExamRequest is the accepted body of POST /api/v1/exams.
type createExamRequest struct {
	Title string `json:"title"`
}

func (controller *ExamsController) ListExams(c *gin.Context) {
	res, err := controller.exams.ListExams(c.Request.Context())
	respond(c, controller.log, http.StatusOK, res, err, "exam listing")
}

func (controller *ExamsController) CreateExam(c *gin.Context) {
	var req createExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, messages.MakeSureAllRequiredFieldsAreProperlyEntered)
		return
	}

	res, err := controller.exams.CreateExam(c.Request.Context(), &entities.Exam{Title: req.Title})
	respond(c, controller.log, http.StatusCreated, res, err, "exam creation")
}

func (controller *ExamsController) GetExam(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	res, err := controller.exams.GetExam(c.Request.Context(), id)
	respond(c, controller.log, http.StatusOK, res, err, "exam retrieval")
}

func (controller *ExamsController) GetExamSkillTopics(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	skill, err := entities.ParseSkill(c.Param("skill"))
	if err != nil {
		respondUnknownSkill(c, c.Param("skill"))
		return
	}

	res, err := controller.exams.GetExamSkillTopics(c.Request.Context(), id, skill)
	respond(c, controller.log, http.StatusOK, res, err, "exam "+string(skill)+" topics retrieval")
}
