package unitsprovider

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"academic-records-backend/db"
	"academic-records-backend/lib/units/store"
	initchecker "academic-records-backend/lib/utils/init-checker"
	"academic-records-backend/models"
	unitsapimodels "academic-records-backend/models/api/units"
	dbmodels "academic-records-backend/models/db"
)

type Provider interface {
	CreateUniversity(request unitsapimodels.UniversityData) (id string, err error)
	UpdateUniversity(id string, request unitsapimodels.UniversityData) error
	GetUniversity(id string) (item unitsapimodels.UniversityView, err error)
	ListUniversities(filter unitsapimodels.UnitFilter) (list []unitsapimodels.UniversityView, err error)
	DeleteUniversity(id string) error

	CreateFaculty(request unitsapimodels.FacultyData) (id string, err error)
	UpdateFaculty(id string, request unitsapimodels.FacultyData) error
	GetFaculty(id string) (item unitsapimodels.FacultyView, err error)
	ListFaculties(filter unitsapimodels.UnitFilter) (list []unitsapimodels.FacultyView, err error)
	DeleteFaculty(id string) error

	CreateDepartment(request unitsapimodels.DepartmentData) (id string, err error)
	UpdateDepartment(id string, request unitsapimodels.DepartmentData) error
	GetDepartment(id string) (item unitsapimodels.DepartmentView, err error)
	ListDepartments(filter unitsapimodels.UnitFilter) (list []unitsapimodels.DepartmentView, err error)
	DeleteDepartment(id string) error

	Tree() (tree []unitsapimodels.UniversityTreeItem, err error)
	// GetDepartmentRec is used by the employment provider to resolve the unit chain.
	GetDepartmentRec(id string) (*dbmodels.Department, error)
}

var Instance Provider

func NewHandler() {
	Instance = NewProvider(store.NewInstance(db.DB))
}

func NewProvider(unitStore store.Provider) Provider {
	instance := impl{
		store: unitStore,
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	return instance
}

type impl struct {
	store store.Provider
}

func (i impl) CreateUniversity(request unitsapimodels.UniversityData) (id string, err error) {
	rec := dbmodels.University{
		Name: request.Name,
		Abbr: request.Abbr,
	}
	id, err = i.store.CreateUniversity(rec)
	if err != nil {
		return "", err
	}
	log.WithField("rec_id", id).
		WithField("university_name", rec.Name).
		Info("university created")
	return id, nil
}

func (i impl) UpdateUniversity(id string, request unitsapimodels.UniversityData) error {
	rec, err := i.store.GetUniversity(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.Wrap(models.ErrNotFound, "university not found")
	}
	rec.Name = request.Name
	rec.Abbr = request.Abbr
	if err = rec.Validate(); err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"name": rec.Name,
		"abbr": rec.Abbr,
	}
	if err = i.store.UpdateUniversity(id, updMap); err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("university updated")
	return nil
}

func (i impl) GetUniversity(id string) (item unitsapimodels.UniversityView, err error) {
	rec, err := i.store.GetUniversity(id)
	if err != nil {
		return unitsapimodels.UniversityView{}, err
	}
	if rec == nil {
		return unitsapimodels.UniversityView{}, errors.Wrap(models.ErrNotFound, "university not found")
	}
	return unitsapimodels.UniversityConvert(*rec), nil
}

func (i impl) ListUniversities(filter unitsapimodels.UnitFilter) (list []unitsapimodels.UniversityView, err error) {
	recList, err := i.store.ListUniversities(filter.Search)
	if err != nil {
		return nil, err
	}
	list = make([]unitsapimodels.UniversityView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, unitsapimodels.UniversityConvert(rec))
	}
	return list, nil
}

func (i impl) DeleteUniversity(id string) error {
	if err := i.store.DeleteUniversity(id); err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("university deleted with its faculties and departments")
	return nil
}

func (i impl) CreateFaculty(request unitsapimodels.FacultyData) (id string, err error) {
	university, err := i.store.GetUniversity(request.UniversityID)
	if err != nil {
		return "", err
	}
	if university == nil {
		return "", models.NewValidationError("university_id", "university not found")
	}
	rec := dbmodels.Faculty{
		Name:       request.Name,
		Abbr:       request.Abbr,
		AncestorID: university.ID,
	}
	id, err = i.store.CreateFaculty(rec)
	if err != nil {
		return "", err
	}
	log.WithField("rec_id", id).
		WithField("faculty_name", rec.Name).
		Info("faculty created")
	return id, nil
}

func (i impl) UpdateFaculty(id string, request unitsapimodels.FacultyData) error {
	rec, err := i.store.GetFaculty(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.Wrap(models.ErrNotFound, "faculty not found")
	}
	if rec.AncestorID != request.UniversityID {
		university, err := i.store.GetUniversity(request.UniversityID)
		if err != nil {
			return err
		}
		if university == nil {
			return models.NewValidationError("university_id", "university not found")
		}
	}
	rec.Name = request.Name
	rec.Abbr = request.Abbr
	rec.AncestorID = request.UniversityID
	if err = rec.Validate(); err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"name":        rec.Name,
		"abbr":        rec.Abbr,
		"ancestor_id": rec.AncestorID,
	}
	if err = i.store.UpdateFaculty(id, updMap); err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("faculty updated")
	return nil
}

func (i impl) GetFaculty(id string) (item unitsapimodels.FacultyView, err error) {
	rec, err := i.store.GetFaculty(id)
	if err != nil {
		return unitsapimodels.FacultyView{}, err
	}
	if rec == nil {
		return unitsapimodels.FacultyView{}, errors.Wrap(models.ErrNotFound, "faculty not found")
	}
	return unitsapimodels.FacultyConvert(*rec), nil
}

func (i impl) ListFaculties(filter unitsapimodels.UnitFilter) (list []unitsapimodels.FacultyView, err error) {
	recList, err := i.store.ListFaculties(filter.ParentID, filter.Search)
	if err != nil {
		return nil, err
	}
	list = make([]unitsapimodels.FacultyView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, unitsapimodels.FacultyConvert(rec))
	}
	return list, nil
}

func (i impl) DeleteFaculty(id string) error {
	if err := i.store.DeleteFaculty(id); err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("faculty deleted with its departments")
	return nil
}

func (i impl) CreateDepartment(request unitsapimodels.DepartmentData) (id string, err error) {
	faculty, err := i.store.GetFaculty(request.FacultyID)
	if err != nil {
		return "", err
	}
	if faculty == nil {
		return "", models.NewValidationError("faculty_id", "faculty not found")
	}
	rec := dbmodels.Department{
		Name:       request.Name,
		Abbr:       request.Abbr,
		AncestorID: faculty.ID,
	}
	id, err = i.store.CreateDepartment(rec)
	if err != nil {
		return "", err
	}
	log.WithField("rec_id", id).
		WithField("department_name", rec.Name).
		Info("department created")
	return id, nil
}

func (i impl) UpdateDepartment(id string, request unitsapimodels.DepartmentData) error {
	rec, err := i.store.GetDepartment(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.Wrap(models.ErrNotFound, "department not found")
	}
	if rec.AncestorID != request.FacultyID {
		faculty, err := i.store.GetFaculty(request.FacultyID)
		if err != nil {
			return err
		}
		if faculty == nil {
			return models.NewValidationError("faculty_id", "faculty not found")
		}
	}
	rec.Name = request.Name
	rec.Abbr = request.Abbr
	rec.AncestorID = request.FacultyID
	if err = rec.Validate(); err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"name":        rec.Name,
		"abbr":        rec.Abbr,
		"ancestor_id": rec.AncestorID,
	}
	if err = i.store.UpdateDepartment(id, updMap); err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("department updated")
	return nil
}

func (i impl) GetDepartment(id string) (item unitsapimodels.DepartmentView, err error) {
	rec, err := i.GetDepartmentRec(id)
	if err != nil {
		return unitsapimodels.DepartmentView{}, err
	}
	return unitsapimodels.DepartmentConvert(*rec), nil
}

func (i impl) GetDepartmentRec(id string) (*dbmodels.Department, error) {
	rec, err := i.store.GetDepartment(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errors.Wrap(models.ErrNotFound, "department not found")
	}
	return rec, nil
}

func (i impl) ListDepartments(filter unitsapimodels.UnitFilter) (list []unitsapimodels.DepartmentView, err error) {
	recList, err := i.store.ListDepartments(filter.ParentID, filter.Search)
	if err != nil {
		return nil, err
	}
	list = make([]unitsapimodels.DepartmentView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, unitsapimodels.DepartmentConvert(rec))
	}
	return list, nil
}

func (i impl) DeleteDepartment(id string) error {
	if err := i.store.DeleteDepartment(id); err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("department deleted")
	return nil
}

func (i impl) Tree() (tree []unitsapimodels.UniversityTreeItem, err error) {
	universities, err := i.store.ListUniversities("")
	if err != nil {
		return nil, err
	}
	faculties, err := i.store.ListFaculties("", "")
	if err != nil {
		return nil, err
	}
	departments, err := i.store.ListDepartments("", "")
	if err != nil {
		return nil, err
	}
	departmentsByFaculty := map[string][]unitsapimodels.DepartmentView{}
	for _, rec := range departments {
		departmentsByFaculty[rec.AncestorID] = append(departmentsByFaculty[rec.AncestorID], unitsapimodels.DepartmentConvert(rec))
	}
	facultiesByUniversity := map[string][]unitsapimodels.FacultyTreeItem{}
	for _, rec := range faculties {
		item := unitsapimodels.FacultyTreeItem{
			FacultyView: unitsapimodels.FacultyConvert(rec),
			Departments: departmentsByFaculty[rec.ID],
		}
		if item.Departments == nil {
			item.Departments = []unitsapimodels.DepartmentView{}
		}
		facultiesByUniversity[rec.AncestorID] = append(facultiesByUniversity[rec.AncestorID], item)
	}
	tree = make([]unitsapimodels.UniversityTreeItem, 0, len(universities))
	for _, rec := range universities {
		item := unitsapimodels.UniversityTreeItem{
			UniversityView: unitsapimodels.UniversityConvert(rec),
			Faculties:      facultiesByUniversity[rec.ID],
		}
		if item.Faculties == nil {
			item.Faculties = []unitsapimodels.FacultyTreeItem{}
		}
		tree = append(tree, item)
	}
	return tree, nil
}
