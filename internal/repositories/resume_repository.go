package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"resume/internal/models/db_models"
	"resume/internal/models/request_models"
	"resume/pkg/utils"
)

// Open-ended periods (no end date) are current and come first.
const periodOrder = "end_date DESC NULLS FIRST, name ASC"

var tableByEntity = map[string]string{
	db_models.EntitySkill:           "skills",
	db_models.EntityWorking:         "workings",
	db_models.EntityProject:         "projects",
	db_models.EntityCourse:          "courses",
	db_models.EntityCertificate:     "certificates",
	db_models.EntityPassion:         "passions",
	db_models.EntityCourseDeveloper: "course_developers",
}

type ResumeRepository interface {
	ListSkills(ctx context.Context) ([]db_models.Skill, error)
	GetSkill(ctx context.Context, id uint) (*db_models.Skill, error)
	ListWorkings(ctx context.Context) ([]db_models.Working, error)
	GetWorking(ctx context.Context, id uint) (*db_models.Working, error)
	ListProjects(ctx context.Context) ([]db_models.Project, error)
	GetProject(ctx context.Context, id uint) (*db_models.Project, error)
	ListCourses(ctx context.Context) ([]db_models.Course, error)
	GetCourse(ctx context.Context, id uint) (*db_models.Course, error)
	ListCertificates(ctx context.Context) ([]db_models.Certificate, error)
	GetCertificate(ctx context.Context, id uint) (*db_models.Certificate, error)
	ListPassions(ctx context.Context) ([]db_models.Passion, error)
	GetPassion(ctx context.Context, id uint) (*db_models.Passion, error)

	// NameOf returns the display name of row id of the given entity type.
	NameOf(ctx context.Context, entityType string, id uint) (string, error)
	// Import upserts a whole resume document in one transaction and returns
	// the owner's user id (0 when the document has no owner).
	Import(ctx context.Context, doc *request_models.ResumeDocument, ownerPasswordHash string) (uint, error)
}

type resumeRepository struct {
	db *gorm.DB
}

func NewResumeRepository(db *gorm.DB) ResumeRepository {
	return &resumeRepository{db: db}
}

func listAll[T any](ctx context.Context, db *gorm.DB, order string, preloads ...string) ([]T, error) {
	q := db.WithContext(ctx)
	for _, p := range preloads {
		q = q.Preload(p)
	}
	var out []T
	if err := q.Order(order).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func getByID[T any](ctx context.Context, db *gorm.DB, id uint, preloads ...string) (*T, error) {
	q := db.WithContext(ctx)
	for _, p := range preloads {
		q = q.Preload(p)
	}
	var out T
	if err := q.First(&out, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrEntityNotFound
		}
		return nil, err
	}
	return &out, nil
}

func (r *resumeRepository) ListSkills(ctx context.Context) ([]db_models.Skill, error) {
	return listAll[db_models.Skill](ctx, r.db, "name ASC")
}

func (r *resumeRepository) GetSkill(ctx context.Context, id uint) (*db_models.Skill, error) {
	return getByID[db_models.Skill](ctx, r.db, id)
}

func (r *resumeRepository) ListWorkings(ctx context.Context) ([]db_models.Working, error) {
	return listAll[db_models.Working](ctx, r.db, periodOrder, "UsedSkills")
}

func (r *resumeRepository) GetWorking(ctx context.Context, id uint) (*db_models.Working, error) {
	return getByID[db_models.Working](ctx, r.db, id, "UsedSkills", "Projects")
}

func (r *resumeRepository) ListProjects(ctx context.Context) ([]db_models.Project, error) {
	return listAll[db_models.Project](ctx, r.db, periodOrder, "UsedSkills", "Job")
}

func (r *resumeRepository) GetProject(ctx context.Context, id uint) (*db_models.Project, error) {
	return getByID[db_models.Project](ctx, r.db, id, "UsedSkills", "Job")
}

func (r *resumeRepository) ListCourses(ctx context.Context) ([]db_models.Course, error) {
	return listAll[db_models.Course](ctx, r.db, periodOrder, "UsedSkills", "Developer")
}

func (r *resumeRepository) GetCourse(ctx context.Context, id uint) (*db_models.Course, error) {
	return getByID[db_models.Course](ctx, r.db, id, "UsedSkills", "Developer", "Certificate")
}

func (r *resumeRepository) ListCertificates(ctx context.Context) ([]db_models.Certificate, error) {
	return listAll[db_models.Certificate](ctx, r.db, "date DESC, name ASC", "Course")
}

func (r *resumeRepository) GetCertificate(ctx context.Context, id uint) (*db_models.Certificate, error) {
	return getByID[db_models.Certificate](ctx, r.db, id, "Course")
}

func (r *resumeRepository) ListPassions(ctx context.Context) ([]db_models.Passion, error) {
	return listAll[db_models.Passion](ctx, r.db, "name ASC")
}

func (r *resumeRepository) GetPassion(ctx context.Context, id uint) (*db_models.Passion, error) {
	return getByID[db_models.Passion](ctx, r.db, id)
}

func (r *resumeRepository) NameOf(ctx context.Context, entityType string, id uint) (string, error) {
	table, ok := tableByEntity[entityType]
	if !ok {
		return "", fmt.Errorf("%w: %q", utils.ErrUnresolvedTarget, entityType)
	}

	var row struct{ Name string }
	err := r.db.WithContext(ctx).Table(table).Select("name").Where("id = ?", id).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", utils.ErrEntityNotFound
		}
		return "", err
	}
	return row.Name, nil
}

func (r *resumeRepository) Import(ctx context.Context, doc *request_models.ResumeDocument, ownerPasswordHash string) (uint, error) {
	var ownerID uint
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		skills, err := importSkills(tx, doc.Skills)
		if err != nil {
			return err
		}
		jobs, err := importWorkings(tx, doc.Workings, skills)
		if err != nil {
			return err
		}
		if err := importProjects(tx, doc.Projects, skills, jobs); err != nil {
			return err
		}
		developers, err := importDevelopers(tx, doc.CourseDevelopers)
		if err != nil {
			return err
		}
		courses, err := importCourses(tx, doc.Courses, skills, developers)
		if err != nil {
			return err
		}
		if err := importCertificates(tx, doc.Certificates, courses); err != nil {
			return err
		}
		for _, p := range doc.Passions {
			passion := db_models.Passion{Named: db_models.Named{Name: p.Name, Description: p.Description}}
			if err := upsertByName(tx, p.Name, &passion); err != nil {
				return err
			}
		}
		for _, m := range doc.Menus {
			if err := replaceMenu(tx, m); err != nil {
				return err
			}
		}
		if doc.Owner != nil {
			ownerID, err = importOwner(tx, doc.Owner, ownerPasswordHash)
			if err != nil {
				return err
			}
		}
		return nil
	})
	return ownerID, err
}

// upsertByName overwrites the row called name with the non-zero fields of
// dst, or inserts dst when there is none. Associations are left alone.
func upsertByName[T any](tx *gorm.DB, name string, dst *T) error {
	var existing struct{ ID uint }
	err := tx.Model(dst).Select("id").Where("name = ?", name).Take(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return tx.Omit(clause.Associations).Create(dst).Error
	case err != nil:
		return err
	}
	return tx.Omit(clause.Associations).Where("id = ?", existing.ID).Updates(dst).Error
}

func resolveSkills(owner string, names []string, skills map[string]db_models.Skill) ([]db_models.Skill, error) {
	out := make([]db_models.Skill, 0, len(names))
	for _, n := range names {
		s, ok := skills[n]
		if !ok {
			return nil, fmt.Errorf("%s: skill %q: %w", owner, n, utils.ErrEntityNotFound)
		}
		out = append(out, s)
	}
	return out, nil
}

func importSkills(tx *gorm.DB, in []request_models.SkillInput) (map[string]db_models.Skill, error) {
	out := make(map[string]db_models.Skill, len(in))
	for _, s := range in {
		skill := db_models.Skill{
			Named: db_models.Named{Name: s.Name, Description: s.Description},
			Level: s.Level,
		}
		if err := upsertByName(tx, s.Name, &skill); err != nil {
			return nil, fmt.Errorf("skill %q: %w", s.Name, err)
		}
		if err := tx.Where("name = ?", s.Name).First(&skill).Error; err != nil {
			return nil, err
		}
		out[s.Name] = skill
	}
	return out, nil
}

func importWorkings(tx *gorm.DB, in []request_models.WorkingInput, skills map[string]db_models.Skill) (map[string]db_models.Working, error) {
	out := make(map[string]db_models.Working, len(in))
	for _, w := range in {
		used, err := resolveSkills("working "+w.Name, w.Skills, skills)
		if err != nil {
			return nil, err
		}
		working := db_models.Working{
			Named:        db_models.Named{Name: w.Name, Description: w.Description},
			Period:       db_models.Period{StartDate: w.StartDate, EndDate: w.EndDate},
			OriginalLink: db_models.OriginalLink{LinkToTheOriginal: w.Link},
			Position:     w.Position,
		}
		if err := upsertByName(tx, w.Name, &working); err != nil {
			return nil, fmt.Errorf("working %q: %w", w.Name, err)
		}
		if err := tx.Where("name = ?", w.Name).First(&working).Error; err != nil {
			return nil, err
		}
		if err := tx.Model(&working).Association("UsedSkills").Replace(used); err != nil {
			return nil, err
		}
		out[w.Name] = working
	}
	return out, nil
}

func importProjects(tx *gorm.DB, in []request_models.ProjectInput, skills map[string]db_models.Skill, jobs map[string]db_models.Working) error {
	for _, p := range in {
		used, err := resolveSkills("project "+p.Name, p.Skills, skills)
		if err != nil {
			return err
		}
		project := db_models.Project{
			Named:        db_models.Named{Name: p.Name, Description: p.Description},
			Period:       db_models.Period{StartDate: p.StartDate, EndDate: p.EndDate},
			OriginalLink: db_models.OriginalLink{LinkToTheOriginal: p.Link},
		}
		if p.Job != "" {
			job, ok := jobs[p.Job]
			if !ok {
				return fmt.Errorf("project %s: job %q: %w", p.Name, p.Job, utils.ErrEntityNotFound)
			}
			project.JobID = &job.ID
		}
		if err := upsertByName(tx, p.Name, &project); err != nil {
			return fmt.Errorf("project %q: %w", p.Name, err)
		}
		if err := tx.Where("name = ?", p.Name).First(&project).Error; err != nil {
			return err
		}
		if err := tx.Model(&project).Association("UsedSkills").Replace(used); err != nil {
			return err
		}
	}
	return nil
}

func importDevelopers(tx *gorm.DB, in []request_models.DeveloperInput) (map[string]db_models.CourseDeveloper, error) {
	out := make(map[string]db_models.CourseDeveloper, len(in))
	for _, d := range in {
		dev := db_models.CourseDeveloper{
			Named:        db_models.Named{Name: d.Name, Description: d.Description},
			OriginalLink: db_models.OriginalLink{LinkToTheOriginal: d.Link},
		}
		if err := upsertByName(tx, d.Name, &dev); err != nil {
			return nil, fmt.Errorf("course developer %q: %w", d.Name, err)
		}
		if err := tx.Where("name = ?", d.Name).First(&dev).Error; err != nil {
			return nil, err
		}
		out[d.Name] = dev
	}
	return out, nil
}

func importCourses(tx *gorm.DB, in []request_models.CourseInput, skills map[string]db_models.Skill, developers map[string]db_models.CourseDeveloper) (map[string]db_models.Course, error) {
	out := make(map[string]db_models.Course, len(in))
	for _, c := range in {
		used, err := resolveSkills("course "+c.Name, c.Skills, skills)
		if err != nil {
			return nil, err
		}
		course := db_models.Course{
			Named:        db_models.Named{Name: c.Name, Description: c.Description},
			Period:       db_models.Period{StartDate: c.StartDate, EndDate: c.EndDate},
			OriginalLink: db_models.OriginalLink{LinkToTheOriginal: c.Link},
		}
		if c.Developer != "" {
			dev, ok := developers[c.Developer]
			if !ok {
				return nil, fmt.Errorf("course %s: developer %q: %w", c.Name, c.Developer, utils.ErrEntityNotFound)
			}
			course.DeveloperID = &dev.ID
		}
		if err := upsertByName(tx, c.Name, &course); err != nil {
			return nil, fmt.Errorf("course %q: %w", c.Name, err)
		}
		if err := tx.Where("name = ?", c.Name).First(&course).Error; err != nil {
			return nil, err
		}
		if err := tx.Model(&course).Association("UsedSkills").Replace(used); err != nil {
			return nil, err
		}
		out[c.Name] = course
	}
	return out, nil
}

func importCertificates(tx *gorm.DB, in []request_models.CertificateInput, courses map[string]db_models.Course) error {
	for _, c := range in {
		cert := db_models.Certificate{
			Named:        db_models.Named{Name: c.Name, Description: c.Description},
			OriginalLink: db_models.OriginalLink{LinkToTheOriginal: c.Link},
			Date:         c.Date,
			Image:        c.Image,
		}
		if c.Course != "" {
			course, ok := courses[c.Course]
			if !ok {
				return fmt.Errorf("certificate %s: course %q: %w", c.Name, c.Course, utils.ErrEntityNotFound)
			}
			cert.CourseID = &course.ID
		}
		if err := upsertByName(tx, c.Name, &cert); err != nil {
			return fmt.Errorf("certificate %q: %w", c.Name, err)
		}
	}
	return nil
}
