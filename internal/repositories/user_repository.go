package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"resume/internal/models/db_models"
	"resume/internal/models/request_models"
	"resume/pkg/utils"
)

type UserRepository interface {
	Create(ctx context.Context, user *db_models.User) error
	FindByID(ctx context.Context, id uint) (*db_models.User, error)
	// FindProfile loads a user with every profile relation.
	FindProfile(ctx context.Context, id uint) (*db_models.User, error)
	// FindByLogin matches the username or, case-insensitively, the email.
	FindByLogin(ctx context.Context, login string) (*db_models.User, error)
	UpdateProfile(ctx context.Context, id uint, in *request_models.ProfileUpdate) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (u *userRepository) Create(ctx context.Context, user *db_models.User) error {
	return u.db.WithContext(ctx).Omit(clause.Associations).Create(user).Error
}

func (u *userRepository) FindByID(ctx context.Context, id uint) (*db_models.User, error) {
	var user db_models.User
	err := u.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrAccountNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (u *userRepository) FindProfile(ctx context.Context, id uint) (*db_models.User, error) {
	var user db_models.User
	err := u.db.WithContext(ctx).
		Preload("Citizenship").
		Preload("City").
		Preload("Profession").
		Preload("Specializations").
		Preload("Job").
		Preload("Job.City").
		Preload("Languages").
		First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrAccountNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (u *userRepository) FindByLogin(ctx context.Context, login string) (*db_models.User, error) {
	login = strings.TrimSpace(login)
	var user db_models.User
	err := u.db.WithContext(ctx).
		Where("username = ? OR LOWER(email) = ?", login, strings.ToLower(login)).
		Order("id").
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrAccountNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdateProfile rewrites the editable profile fields of one user in a
// single transaction. Reference rows are found or created by name.
func (u *userRepository) UpdateProfile(ctx context.Context, id uint, in *request_models.ProfileUpdate) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user db_models.User
		if err := tx.First(&user, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrAccountNotFound
			}
			return err
		}

		user.FirstName = in.FirstName
		user.MiddleName = in.MiddleName
		user.LastName = in.LastName
		user.BiologicalSex = in.BiologicalSex
		user.Birthday = in.Birthday
		user.ProfessionalLevel = in.ProfessionalLevel
		user.Motto = in.Motto
		user.AboutMe = in.AboutMe
		if err := linkReferences(tx, &user, in.Citizenship, in.City, in.Profession, in.Job); err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Save(&user).Error; err != nil {
			return err
		}
		if err := replaceSpecializations(tx, &user, in.Specializations); err != nil {
			return err
		}
		return replaceLanguages(tx, &user, in.Languages)
	})
}

func importOwner(tx *gorm.DB, in *request_models.OwnerInput, passwordHash string) (uint, error) {
	user := db_models.User{
		Username:          in.Username,
		Email:             in.Email,
		PasswordHash:      passwordHash,
		FirstName:         in.FirstName,
		MiddleName:        in.MiddleName,
		LastName:          in.LastName,
		IsStaff:           in.IsStaff,
		Photo:             in.Photo,
		BiologicalSex:     in.BiologicalSex,
		Birthday:          in.Birthday,
		ProfessionalLevel: in.ProfessionalLevel,
		Motto:             in.Motto,
		AboutMe:           in.AboutMe,
	}
	if err := linkReferences(tx, &user, in.Citizenship, in.City, in.Profession, in.Job); err != nil {
		return 0, err
	}

	var existing db_models.User
	err := tx.Where("username = ?", in.Username).Take(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := tx.Omit(clause.Associations).Create(&user).Error; err != nil {
			return 0, fmt.Errorf("owner %q: %w", in.Username, err)
		}
	case err != nil:
		return 0, err
	default:
		user.ID = existing.ID
		user.CreatedAt = existing.CreatedAt
		if passwordHash == "" {
			user.PasswordHash = existing.PasswordHash
		}
		if err := tx.Omit(clause.Associations).Save(&user).Error; err != nil {
			return 0, fmt.Errorf("owner %q: %w", in.Username, err)
		}
	}

	if err := replaceSpecializations(tx, &user, in.Specializations); err != nil {
		return 0, err
	}
	if err := replaceLanguages(tx, &user, in.Languages); err != nil {
		return 0, err
	}
	return user.ID, nil
}

// linkReferences points the user at the named country, city, profession and
// employer. An empty name clears the link.
func linkReferences(tx *gorm.DB, user *db_models.User, citizenship, city, profession, job string) error {
	user.CitizenshipID, user.CityID, user.ProfessionID, user.JobID = nil, nil, nil, nil

	if citizenship != "" {
		country := db_models.Country{Name: citizenship}
		if err := tx.Where("name = ?", citizenship).FirstOrCreate(&country).Error; err != nil {
			return err
		}
		user.CitizenshipID = &country.ID
	}
	if city != "" {
		c := db_models.City{Name: city}
		if err := tx.Where("name = ?", city).FirstOrCreate(&c).Error; err != nil {
			return err
		}
		user.CityID = &c.ID
	}
	if profession != "" {
		p := db_models.Profession{Name: profession}
		if err := tx.Where("name = ?", profession).FirstOrCreate(&p).Error; err != nil {
			return err
		}
		user.ProfessionID = &p.ID
	}
	if job != "" {
		org := db_models.Organization{Name: job, CityID: user.CityID}
		if err := tx.Where("name = ?", job).FirstOrCreate(&org).Error; err != nil {
			return err
		}
		user.JobID = &org.ID
	}
	return nil
}

func replaceSpecializations(tx *gorm.DB, user *db_models.User, names []string) error {
	specs := make([]db_models.Specialization, 0, len(names))
	for _, name := range names {
		spec := db_models.Specialization{Name: name}
		if err := tx.Where("name = ?", name).FirstOrCreate(&spec).Error; err != nil {
			return err
		}
		specs = append(specs, spec)
	}
	return tx.Model(user).Association("Specializations").Replace(specs)
}

func replaceLanguages(tx *gorm.DB, user *db_models.User, in []request_models.LanguageInput) error {
	langs := make([]db_models.Language, 0, len(in))
	for _, l := range in {
		level := l.Level
		if level == "" {
			level = "A1"
		}
		lang := db_models.Language{Name: l.Name, Level: level}
		if err := tx.Where("name = ? AND level = ?", l.Name, level).FirstOrCreate(&lang).Error; err != nil {
			return err
		}
		langs = append(langs, lang)
	}
	return tx.Model(user).Association("Languages").Replace(langs)
}
