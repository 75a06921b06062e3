package wedding

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"
)

const codeAttempts = 10

type Service struct {
	repo    Repository
	baseURL string

	mu       sync.Mutex
	activeID string
}

func NewService(repo Repository, baseURL string) *Service {
	return &Service{repo: repo, baseURL: strings.TrimRight(baseURL, "/")}
}

// CreateWedding builds a wedding with full defaults and registers it. The
// generated rsvp code is checked against the registry and regenerated a
// bounded number of times on collision.
func (s *Service) CreateWedding(ctx context.Context) (*Wedding, error) {
	w, err := newWedding(s.baseURL, time.Now())
	if err != nil {
		return nil, err
	}

	for i := 0; i < codeAttempts; i++ {
		taken, err := s.repo.IsCodeTaken(ctx, w.RSVPCode)
		if err != nil {
			return nil, err
		}
		if !taken {
			if err := s.repo.CreateWedding(ctx, w); err != nil {
				return nil, err
			}
			return w, nil
		}

		code, err := generateCode(w.ID)
		if err != nil {
			return nil, err
		}
		w.RSVPCode = code
		w.RSVPLink = s.baseURL + "/rsvp/" + code
	}

	return nil, ErrCodeGenerationFailed
}

func (s *Service) ListWeddings(ctx context.Context) ([]Wedding, error) {
	return s.repo.ListWeddings(ctx)
}

func (s *Service) GetWedding(ctx context.Context, id string) (*Wedding, error) {
	return s.repo.GetWedding(ctx, id)
}

func (s *Service) GetWeddingByCode(ctx context.Context, code string) (*Wedding, error) {
	return s.repo.GetWeddingByCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
}

type DetailsUpdate struct {
	BrideName    *string
	GroomName    *string
	Date         *string
	Time         *string
	VenueName    *string
	VenueAddress *string
	Theme        *string
}

func (s *Service) UpdateDetails(ctx context.Context, id string, update DetailsUpdate) (*Wedding, error) {
	w, err := s.repo.GetWedding(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.BrideName != nil {
		w.BrideName = strings.TrimSpace(*update.BrideName)
	}
	if update.GroomName != nil {
		w.GroomName = strings.TrimSpace(*update.GroomName)
	}
	w.CoupleName = combineCoupleName(w.BrideName, w.GroomName)

	if update.Date != nil {
		date := strings.TrimSpace(*update.Date)
		if _, err := time.Parse(dateLayout, date); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDate, date)
		}
		w.Date = date
	}
	if update.Time != nil {
		w.Time = strings.TrimSpace(*update.Time)
	}
	if update.VenueName != nil {
		w.VenueName = strings.TrimSpace(*update.VenueName)
	}
	if update.VenueAddress != nil {
		w.VenueAddress = strings.TrimSpace(*update.VenueAddress)
	}
	if update.Theme != nil {
		theme, ok := themeByName(*update.Theme)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTheme, *update.Theme)
		}
		w.ThemeColor = theme
	}

	if err := s.repo.UpdateWedding(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

type CustomizationUpdate struct {
	PrimaryColor    *string
	SecondaryColor  *string
	BGStart         *string
	BGEnd           *string
	BGPhoto         *string
	FontStyle       *string
	HeaderText      *string
	FooterText      *string
	RSVPTitle       *string
	RSVPSubtitle    *string
	ThankYouTitle   *string
	ThankYouMessage *string
}

// UpdateCustomization applies a partial update. Each field is last-writer-wins;
// the background photo in particular may be overwritten by a later upload
// while an earlier one is still pending on the client.
func (s *Service) UpdateCustomization(ctx context.Context, id string, update CustomizationUpdate) (*Wedding, error) {
	w, err := s.repo.GetWedding(ctx, id)
	if err != nil {
		return nil, err
	}

	c := &w.Customization
	apply := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&c.PrimaryColor, update.PrimaryColor)
	apply(&c.SecondaryColor, update.SecondaryColor)
	apply(&c.BGStart, update.BGStart)
	apply(&c.BGEnd, update.BGEnd)
	apply(&c.BGPhoto, update.BGPhoto)
	apply(&c.FontStyle, update.FontStyle)
	apply(&c.HeaderText, update.HeaderText)
	apply(&c.FooterText, update.FooterText)
	apply(&c.RSVPTitle, update.RSVPTitle)
	apply(&c.RSVPSubtitle, update.RSVPSubtitle)
	apply(&c.ThankYouTitle, update.ThankYouTitle)
	apply(&c.ThankYouMessage, update.ThankYouMessage)

	if err := s.repo.UpdateWedding(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *Service) UpdateEmailTemplate(ctx context.Context, id, subject, body string) (*Wedding, error) {
	w, err := s.repo.GetWedding(ctx, id)
	if err != nil {
		return nil, err
	}
	w.EmailTemplate = EmailTemplate{Subject: subject, Body: body}
	if err := s.repo.UpdateWedding(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *Service) UpdateSMSTemplate(ctx context.Context, id, body string) (*Wedding, error) {
	w, err := s.repo.GetWedding(ctx, id)
	if err != nil {
		return nil, err
	}
	w.SMSTemplate = SMSTemplate{Body: body}
	if err := s.repo.UpdateWedding(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

type QuestionInput struct {
	Label    string
	Type     string
	Options  string
	Required bool
}

func (s *Service) AddQuestion(ctx context.Context, id string, input QuestionInput) (*Question, error) {
	w, err := s.repo.GetWedding(ctx, id)
	if err != nil {
		return nil, err
	}

	question, err := buildQuestion("custom_"+strconv.FormatInt(time.Now().UnixMilli(), 10), w.ID, input)
	if err != nil {
		return nil, err
	}
	question.Position = len(w.Questions)
	question.Editable = true

	questions := append(w.Questions, *question)
	if err := s.repo.ReplaceQuestions(ctx, w.ID, questions); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *Service) UpdateQuestion(ctx context.Context, id, questionID string, input QuestionInput) (*Question, error) {
	w, err := s.repo.GetWedding(ctx, id)
	if err != nil {
		return nil, err
	}

	index := questionIndex(w.Questions, questionID)
	if index < 0 {
		return nil, ErrQuestionNotFound
	}
	if !w.Questions[index].Editable {
		return nil, ErrQuestionNotEditable
	}

	question, err := buildQuestion(questionID, w.ID, input)
	if err != nil {
		return nil, err
	}
	question.Position = w.Questions[index].Position
	question.Editable = true

	w.Questions[index] = *question
	if err := s.repo.ReplaceQuestions(ctx, w.ID, w.Questions); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *Service) DeleteQuestion(ctx context.Context, id, questionID string) error {
	w, err := s.repo.GetWedding(ctx, id)
	if err != nil {
		return err
	}

	index := questionIndex(w.Questions, questionID)
	if index < 0 {
		return ErrQuestionNotFound
	}
	if !w.Questions[index].Editable {
		return ErrQuestionNotEditable
	}

	questions := append(w.Questions[:index:index], w.Questions[index+1:]...)
	for i := range questions {
		questions[i].Position = i
	}
	return s.repo.ReplaceQuestions(ctx, w.ID, questions)
}

// DeleteWedding removes the wedding and drops the active reference when it
// pointed at the deleted wedding.
func (s *Service) DeleteWedding(ctx context.Context, id string) error {
	if err := s.repo.DeleteWedding(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	if s.activeID == id {
		s.activeID = ""
	}
	s.mu.Unlock()
	return nil
}

func (s *Service) SetActive(ctx context.Context, id string) error {
	if _, err := s.repo.GetWedding(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	s.activeID = id
	s.mu.Unlock()
	return nil
}

func (s *Service) ClearActive() {
	s.mu.Lock()
	s.activeID = ""
	s.mu.Unlock()
}

// ActiveWedding returns the currently open wedding, or ErrWeddingNotFound
// when none is active.
func (s *Service) ActiveWedding(ctx context.Context) (*Wedding, error) {
	s.mu.Lock()
	id := s.activeID
	s.mu.Unlock()

	if id == "" {
		return nil, ErrWeddingNotFound
	}
	return s.repo.GetWedding(ctx, id)
}

// Themes lists the fixed palette a wedding theme can be chosen from.
func (s *Service) Themes() []ThemeColor {
	themes := make([]ThemeColor, len(themePalette))
	copy(themes, themePalette)
	return themes
}

func buildQuestion(id, weddingID string, input QuestionInput) (*Question, error) {
	label := strings.TrimSpace(input.Label)
	if label == "" {
		return nil, ErrLabelRequired
	}
	if !validQuestionType(input.Type) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidQuestionType, input.Type)
	}

	var options []string
	if HasOptions(input.Type) {
		options = splitOptions(input.Options)
		if len(options) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrOptionsRequired, input.Type)
		}
	}

	return &Question{
		ID:        id,
		WeddingID: weddingID,
		Type:      input.Type,
		Label:     label,
		Required:  input.Required,
		Options:   options,
	}, nil
}

func splitOptions(value string) []string {
	parts := strings.Split(value, ",")
	options := make([]string, 0, len(parts))
	for _, part := range parts {
		if option := strings.TrimSpace(part); option != "" {
			options = append(options, option)
		}
	}
	return options
}

func validQuestionType(questionType string) bool {
	switch questionType {
	case QuestionTypeText, QuestionTypeTextarea, QuestionTypeSelect, QuestionTypeRadio:
		return true
	}
	return false
}

func questionIndex(questions []Question, id string) int {
	for i := range questions {
		if questions[i].ID == id {
			return i
		}
	}
	return -1
}

func themeByName(name string) (ThemeColor, bool) {
	for _, theme := range themePalette {
		if strings.EqualFold(theme.Name, name) {
			return theme, true
		}
	}
	return ThemeColor{}, false
}
