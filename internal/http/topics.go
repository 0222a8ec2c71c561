package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/learningmate/examstore/internal/entities"
	"github.com/learningmate/examstore/internal/messages"
	"github.com/learningmate/examstore/internal/result"
)

// TopicsController serves the topics of every configured skill under one set
// of routes keyed by the :skill parameter.
type TopicsController struct {
	topics map[entities.Skill]TopicsService
	log    zerolog.Logger
}

func NewTopicsController(services []TopicsService, log zerolog.Logger) *TopicsController {
	topics := make(map[entities.Skill]TopicsService, len(services))
	for _, svc := range services {
		topics[svc.Skill()] = svc
	}
	return &TopicsController{
		topics: topics,
		log:    log.With().Str(messages.FieldComponent, "topics_controller").Logger(),
	}
}

// service resolves the :skill parameter or responds with a 400.
func (controller *TopicsController) service(c *gin.Context) (TopicsService, bool) {
	raw := c.Param("skill")
	skill, err := entities.ParseSkill(raw)
	if err != nil {
		respondUnknownSkill(c, raw)
		return nil, false
	}
	svc, ok := controller.topics[skill]
	if !ok {
		respondUnknownSkill(c, raw)
		return nil, false
	}
	return svc, true
}

func (controller *TopicsController) CreateTopic(c *gin.Context) {
	svc, ok := controller.service(c)
	if !ok {
		return
	}

	var topic entities.Topic
	if err := c.ShouldBindJSON(&topic); err != nil {
		respondBadRequest(c, messages.MakeSureAllRequiredFieldsAreProperlyEntered)
		return
	}

	res, err := svc.CreateTopic(c.Request.Context(), &topic)
	respond(c, controller.log, http.StatusCreated, res, err, svc.Skill().Noun()+" creation")
}

func (controller *TopicsController) GetTopic(c *gin.Context) {
	svc, ok := controller.service(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	res, err := svc.GetTopic(c.Request.Context(), id)
	respond(c, controller.log, http.StatusOK, res, err, svc.Skill().Noun()+" retrieval")
}

func (controller *TopicsController) GetTopicWithQuestions(c *gin.Context) {
	svc, ok := controller.service(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	res, err := svc.GetTopicWithQuestions(c.Request.Context(), id)
	respond(c, controller.log, http.StatusOK, res, err, svc.Skill().Noun()+" retrieval")
}

func respondUnknownSkill(c *gin.Context, raw string) {
	respondProblems(c, []result.Problem{
		result.Validation(messages.MakeSureAllRequiredFieldsAreProperlyEntered).
			With("field", "skill").
			With(messages.FieldSkill, raw),
	})
}
