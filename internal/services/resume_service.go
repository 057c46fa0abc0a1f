package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"resume/internal/models/db_models"
	"resume/internal/models/request_models"
	"resume/internal/models/response_models"
	"resume/internal/repositories"
	"resume/pkg/utils"
)

// Section is one public resume listing under /data/<Slug>.
type Section struct {
	Slug       string
	EntityType string
	Title      string
}

var Sections = []Section{
	{Slug: "skills", EntityType: db_models.EntitySkill, Title: "Skills"},
	{Slug: "working", EntityType: db_models.EntityWorking, Title: "Work experience"},
	{Slug: "projects", EntityType: db_models.EntityProject, Title: "Projects"},
	{Slug: "courses", EntityType: db_models.EntityCourse, Title: "Courses"},
	{Slug: "certificates", EntityType: db_models.EntityCertificate, Title: "Certificates"},
	{Slug: "passions", EntityType: db_models.EntityPassion, Title: "Passions"},
}

type ResumeServiceInterface interface {
	Profile(ctx context.Context, userID uint) (*db_models.User, error)
	List(ctx context.Context, entityType string) ([]response_models.ResumeEntry, error)
	Get(ctx context.Context, entityType string, id uint) (*response_models.ResumeEntry, error)
	All(ctx context.Context) ([]response_models.SectionEntries, error)
	Import(ctx context.Context, doc *request_models.ResumeDocument) (uint, error)
	UpdateProfile(ctx context.Context, userID uint, in *request_models.ProfileUpdate) error
}

type ResumeService struct {
	resumeRepo repositories.ResumeRepository
	userRepo   repositories.UserRepository
	log        *zap.Logger
	now        func() time.Time
}

func NewResumeService(resumeRepo repositories.ResumeRepository, userRepo repositories.UserRepository, log *zap.Logger) ResumeServiceInterface {
	return &ResumeService{
		resumeRepo: resumeRepo,
		userRepo:   userRepo,
		log:        log,
		now:        time.Now,
	}
}

func (s *ResumeService) Profile(ctx context.Context, userID uint) (*db_models.User, error) {
	user, err := s.userRepo.FindProfile(ctx, userID)
	if err != nil {
		return nil, s.mapErr("load profile", err)
	}
	return user, nil
}

func (s *ResumeService) List(ctx context.Context, entityType string) ([]response_models.ResumeEntry, error) {
	var (
		out []response_models.ResumeEntry
		err error
	)
	today := s.now()
	switch entityType {
	case db_models.EntitySkill:
		var items []db_models.Skill
		if items, err = s.resumeRepo.ListSkills(ctx); err == nil {
			for i := range items {
				out = append(out, skillEntry(&items[i]))
			}
		}
	case db_models.EntityWorking:
		var items []db_models.Working
		if items, err = s.resumeRepo.ListWorkings(ctx); err == nil {
			for i := range items {
				out = append(out, workingEntry(&items[i], today))
			}
		}
	case db_models.EntityProject:
		var items []db_models.Project
		if items, err = s.resumeRepo.ListProjects(ctx); err == nil {
			for i := range items {
				out = append(out, projectEntry(&items[i], today))
			}
		}
	case db_models.EntityCourse:
		var items []db_models.Course
		if items, err = s.resumeRepo.ListCourses(ctx); err == nil {
			for i := range items {
				out = append(out, courseEntry(&items[i], today))
			}
		}
	case db_models.EntityCertificate:
		var items []db_models.Certificate
		if items, err = s.resumeRepo.ListCertificates(ctx); err == nil {
			for i := range items {
				out = append(out, certificateEntry(&items[i]))
			}
		}
	case db_models.EntityPassion:
		var items []db_models.Passion
		if items, err = s.resumeRepo.ListPassions(ctx); err == nil {
			for i := range items {
				out = append(out, passionEntry(&items[i]))
			}
		}
	default:
		return nil, fmt.Errorf("%w: %q", utils.ErrUnresolvedTarget, entityType)
	}
	if err != nil {
		return nil, s.mapErr("list "+entityType, err)
	}
	return out, nil
}

func (s *ResumeService) Get(ctx context.Context, entityType string, id uint) (*response_models.ResumeEntry, error) {
	var (
		entry response_models.ResumeEntry
		err   error
	)
	today := s.now()
	switch entityType {
	case db_models.EntitySkill:
		var item *db_models.Skill
		if item, err = s.resumeRepo.GetSkill(ctx, id); err == nil {
			entry = skillEntry(item)
		}
	case db_models.EntityWorking:
		var item *db_models.Working
		if item, err = s.resumeRepo.GetWorking(ctx, id); err == nil {
			entry = workingEntry(item, today)
		}
	case db_models.EntityProject:
		var item *db_models.Project
		if item, err = s.resumeRepo.GetProject(ctx, id); err == nil {
			entry = projectEntry(item, today)
		}
	case db_models.EntityCourse:
		var item *db_models.Course
		if item, err = s.resumeRepo.GetCourse(ctx, id); err == nil {
			entry = courseEntry(item, today)
		}
	case db_models.EntityCertificate:
		var item *db_models.Certificate
		if item, err = s.resumeRepo.GetCertificate(ctx, id); err == nil {
			entry = certificateEntry(item)
		}
	case db_models.EntityPassion:
		var item *db_models.Passion
		if item, err = s.resumeRepo.GetPassion(ctx, id); err == nil {
			entry = passionEntry(item)
		}
	default:
		return nil, fmt.Errorf("%w: %q", utils.ErrUnresolvedTarget, entityType)
	}
	if err != nil {
		return nil, s.mapErr(fmt.Sprintf("get %s %d", entityType, id), err)
	}
	return &entry, nil
}

func (s *ResumeService) All(ctx context.Context) ([]response_models.SectionEntries, error) {
	out := make([]response_models.SectionEntries, 0, len(Sections))
	for _, sec := range Sections {
		entries, err := s.List(ctx, sec.EntityType)
		if err != nil {
			return nil, err
		}
		out = append(out, response_models.SectionEntries{Slug: sec.Slug, Title: sec.Title, Entries: entries})
	}
	return out, nil
}

// Import validates a resume document and stores it in one transaction.
func (s *ResumeService) Import(ctx context.Context, doc *request_models.ResumeDocument) (uint, error) {
	if verr := validateDocument(doc); verr != nil {
		return 0, verr
	}

	var hash string
	if doc.Owner != nil && doc.Owner.Password != "" {
		var err error
		if hash, err = utils.HashPassword(doc.Owner.Password); err != nil {
			return 0, fmt.Errorf("hash owner password: %w", err)
		}
	}

	ownerID, err := s.resumeRepo.Import(ctx, doc, hash)
	if err != nil {
		if errors.Is(err, utils.ErrEntityNotFound) {
			return 0, &utils.ValidationError{Fields: map[string][]string{"references": {err.Error()}}, Cause: err}
		}
		s.log.Error("import resume", zap.Error(err))
		return 0, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return ownerID, nil
}

// UpdateProfile stores a validated profile edit for the given account.
func (s *ResumeService) UpdateProfile(ctx context.Context, userID uint, in *request_models.ProfileUpdate) error {
	if err := s.userRepo.UpdateProfile(ctx, userID, in); err != nil {
		return s.mapErr("update profile", err)
	}
	return nil
}

func (s *ResumeService) mapErr(op string, err error) error {
	switch {
	case errors.Is(err, utils.ErrEntityNotFound), errors.Is(err, utils.ErrAccountNotFound), errors.Is(err, utils.ErrUnresolvedTarget):
		return err
	default:
		s.log.Error(op, zap.Error(err))
		return utils.ErrDatabaseError
	}
}

func validateDocument(doc *request_models.ResumeDocument) *utils.ValidationError {
	verr := &utils.ValidationError{}
	named := func(field, name string) {
		switch {
		case strings.TrimSpace(name) == "":
			verr.Add(field+".name", "This field is required.")
		case len([]rune(name)) > 500:
			verr.Add(field+".name", "Ensure this value has at most 500 characters.")
		}
	}
	period := func(field string, start, end *time.Time) {
		if p := utils.ValidatePeriod(start, end); p != nil {
			for k, msgs := range p.Fields {
				for _, m := range msgs {
					verr.Add(field+"."+k, m)
				}
			}
		}
	}

	if o := doc.Owner; o != nil {
		if strings.TrimSpace(o.Username) == "" {
			verr.Add("owner.username", "This field is required.")
		}
		if o.ProfessionalLevel != nil {
			if _, ok := db_models.ProfessionalLevels[*o.ProfessionalLevel]; !ok {
				verr.Add("owner.professional_level", "Select a valid choice.")
			}
		}
		if o.BiologicalSex != nil {
			if _, ok := db_models.BiologicalSexes[*o.BiologicalSex]; !ok {
				verr.Add("owner.biological_sex", "Select a valid choice.")
			}
		}
		for i, l := range o.Languages {
			if _, ok := db_models.LanguageLevels[l.Level]; l.Level != "" && !ok {
				verr.Add(fmt.Sprintf("owner.languages[%d].level", i), "Select a valid choice.")
			}
		}
	}
	for i, sk := range doc.Skills {
		named(fmt.Sprintf("skills[%d]", i), sk.Name)
		if sk.Level != nil {
			if _, ok := db_models.SkillLevels[*sk.Level]; !ok {
				verr.Add(fmt.Sprintf("skills[%d].level", i), "Select a valid choice.")
			}
		}
	}
	for i, w := range doc.Workings {
		named(fmt.Sprintf("workings[%d]", i), w.Name)
		period(fmt.Sprintf("workings[%d]", i), w.StartDate, w.EndDate)
	}
	for i, p := range doc.Projects {
		named(fmt.Sprintf("projects[%d]", i), p.Name)
		period(fmt.Sprintf("projects[%d]", i), p.StartDate, p.EndDate)
	}
	for i, d := range doc.CourseDevelopers {
		named(fmt.Sprintf("course_developers[%d]", i), d.Name)
	}
	for i, c := range doc.Courses {
		named(fmt.Sprintf("courses[%d]", i), c.Name)
		period(fmt.Sprintf("courses[%d]", i), c.StartDate, c.EndDate)
	}
	for i, c := range doc.Certificates {
		named(fmt.Sprintf("certificates[%d]", i), c.Name)
		if c.Date.IsZero() {
			verr.Add(fmt.Sprintf("certificates[%d].date", i), "This field is required.")
		}
	}
	for i, p := range doc.Passions {
		named(fmt.Sprintf("passions[%d]", i), p.Name)
	}
	for i, m := range doc.Menus {
		if strings.TrimSpace(m.Name) == "" {
			verr.Add(fmt.Sprintf("menus[%d].name", i), "This field is required.")
		}
		for j, p := range m.Items {
			if p.Slug == "" || p.Name == "" {
				verr.Add(fmt.Sprintf("menus[%d].items[%d]", i, j), "Name and slug are required.")
			}
		}
	}

	if verr.Empty() {
		return nil
	}
	return verr
}

func skillLinks(skills []db_models.Skill) []response_models.Link {
	out := make([]response_models.Link, 0, len(skills))
	for _, sk := range skills {
		out = append(out, response_models.Link{Name: sk.Name, URL: fmt.Sprintf("/data/skills/%d", sk.ID)})
	}
	return out
}

func skillEntry(s *db_models.Skill) response_models.ResumeEntry {
	e := response_models.ResumeEntry{ID: s.ID, EntityType: db_models.EntitySkill, Name: s.Name, Description: s.Description}
	if lvl := s.LevelLabel(); lvl != "" {
		e.Details = append(e.Details, response_models.Detail{Label: "Level", Value: lvl})
	}
	return e
}

func workingEntry(w *db_models.Working, today time.Time) response_models.ResumeEntry {
	e := response_models.ResumeEntry{
		ID:          w.ID,
		EntityType:  db_models.EntityWorking,
		Name:        w.Name,
		Description: w.Description,
		StartDate:   w.StartDate,
		EndDate:     w.EndDate,
		Period:      utils.PeriodLength(w.StartDate, w.EndDate, today),
		Original:    w.Link(),
		Skills:      skillLinks(w.UsedSkills),
	}
	if w.Position != "" {
		e.Details = append(e.Details, response_models.Detail{Label: "Position", Value: w.Position})
	}
	for _, p := range w.Projects {
		e.Related = append(e.Related, response_models.Link{Name: p.Name, URL: fmt.Sprintf("/data/projects/%d", p.ID)})
	}
	return e
}

func projectEntry(p *db_models.Project, today time.Time) response_models.ResumeEntry {
	e := response_models.ResumeEntry{
		ID:          p.ID,
		EntityType:  db_models.EntityProject,
		Name:        p.Name,
		Description: p.Description,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		Period:      utils.PeriodLength(p.StartDate, p.EndDate, today),
		Original:    p.Link(),
		Skills:      skillLinks(p.UsedSkills),
	}
	if p.Job != nil {
		e.Details = append(e.Details, response_models.Detail{Label: "Job", Value: p.Job.Name, URL: fmt.Sprintf("/data/working/%d", p.Job.ID)})
	}
	return e
}

func courseEntry(c *db_models.Course, today time.Time) response_models.ResumeEntry {
	e := response_models.ResumeEntry{
		ID:          c.ID,
		EntityType:  db_models.EntityCourse,
		Name:        c.Name,
		Description: c.Description,
		StartDate:   c.StartDate,
		EndDate:     c.EndDate,
		Period:      utils.PeriodLength(c.StartDate, c.EndDate, today),
		Original:    c.Link(),
		Skills:      skillLinks(c.UsedSkills),
	}
	if c.Developer != nil {
		e.Details = append(e.Details, response_models.Detail{Label: "Developer", Value: c.Developer.Name, URL: c.Developer.Link()})
	}
	if c.Certificate != nil {
		e.Related = append(e.Related, response_models.Link{Name: c.Certificate.Name, URL: fmt.Sprintf("/data/certificates/%d", c.Certificate.ID)})
	}
	return e
}

func certificateEntry(c *db_models.Certificate) response_models.ResumeEntry {
	e := response_models.ResumeEntry{
		ID:          c.ID,
		EntityType:  db_models.EntityCertificate,
		Name:        c.Name,
		Description: c.Description,
		Original:    c.Link(),
		Details:     []response_models.Detail{{Label: "Date", Value: utils.FormatDate(&c.Date)}},
	}
	if c.Image != nil {
		e.Image = *c.Image
	}
	if c.Course != nil {
		e.Details = append(e.Details, response_models.Detail{Label: "Course", Value: c.Course.Name, URL: fmt.Sprintf("/data/courses/%d", c.Course.ID)})
	}
	return e
}

func passionEntry(p *db_models.Passion) response_models.ResumeEntry {
	return response_models.ResumeEntry{ID: p.ID, EntityType: db_models.EntityPassion, Name: p.Name, Description: p.Description}
}
