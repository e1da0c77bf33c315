package employmentprovider

import (
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"academic-records-backend/db"
	positionprovider "academic-records-backend/lib/dicts/position"
	"academic-records-backend/lib/employment/store"
	unitsprovider "academic-records-backend/lib/units"
	"academic-records-backend/lib/utils/helpers"
	initchecker "academic-records-backend/lib/utils/init-checker"
	"academic-records-backend/models"
	employeeapimodels "academic-records-backend/models/api/employee"
	dbmodels "academic-records-backend/models/db"
)

type Provider interface {
	Create(request employeeapimodels.EmploymentData) (id string, err error)
	Update(id string, request employeeapimodels.EmploymentData) error
	Get(id string) (item employeeapimodels.EmploymentView, err error)
	List(filter employeeapimodels.EmploymentFilter) (list []employeeapimodels.EmploymentView, err error)
	Delete(id string) error
}

var Instance Provider

func NewHandler() {
	Instance = NewProvider(store.NewInstance(db.DB), positionprovider.Instance, unitsprovider.Instance)
}

func NewProvider(employmentStore store.Provider, positions positionprovider.Provider, units unitsprovider.Provider) Provider {
	instance := impl{
		store:     employmentStore,
		positions: positions,
		units:     units,
		today:     helpers.Today,
	}
	initchecker.CheckInit(
		"store", instance.store,
		"positionprovider", instance.positions,
		"unitsprovider", instance.units,
	)
	return instance
}

type impl struct {
	store     store.Provider
	positions positionprovider.Provider
	units     unitsprovider.Provider
	today     func() time.Time
}

func (i impl) Create(request employeeapimodels.EmploymentData) (id string, err error) {
	rec, err := i.build(request)
	if err != nil {
		return "", err
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	log.WithField("rec_id", id).
		WithField("employee_id", rec.EmployeeID).
		Info("employment created")
	return id, nil
}

func (i impl) Update(id string, request employeeapimodels.EmploymentData) error {
	existing, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return errors.Wrap(models.ErrNotFound, "employment not found")
	}
	rec, err := i.build(request)
	if err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"employee_id":   rec.EmployeeID,
		"position_id":   rec.PositionID,
		"group_id":      rec.GroupID,
		"department_id": rec.DepartmentID,
		"since_date":    rec.SinceDate,
		"until_date":    rec.UntilDate,
	}
	if err = i.store.Update(id, updMap); err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("employment updated")
	return nil
}

func (i impl) Get(id string) (item employeeapimodels.EmploymentView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return employeeapimodels.EmploymentView{}, err
	}
	if rec == nil {
		return employeeapimodels.EmploymentView{}, errors.Wrap(models.ErrNotFound, "employment not found")
	}
	return employeeapimodels.EmploymentConvert(*rec, i.today()), nil
}

func (i impl) List(filter employeeapimodels.EmploymentFilter) (list []employeeapimodels.EmploymentView, err error) {
	today := i.today()
	recList, err := i.store.List(filter, today)
	if err != nil {
		return nil, err
	}
	list = make([]employeeapimodels.EmploymentView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, employeeapimodels.EmploymentConvert(rec, today))
	}
	return list, nil
}

func (i impl) Delete(id string) error {
	if err := i.store.Delete(id); err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("employment deleted")
	return nil
}

// build resolves the references of the request and validates the resulting employment.
func (i impl) build(request employeeapimodels.EmploymentData) (dbmodels.Employment, error) {
	since, until, err := request.Dates()
	if err != nil {
		return dbmodels.Employment{}, err
	}
	employee, err := i.store.GetEmployee(request.EmployeeID)
	if err != nil {
		return dbmodels.Employment{}, err
	}
	if employee == nil {
		return dbmodels.Employment{}, models.NewValidationError("employee_id", "employee not found")
	}
	position, err := i.positions.GetRec(request.PositionID)
	if err != nil {
		return dbmodels.Employment{}, asFieldError(err, "position_id", "position not found")
	}
	department, err := i.units.GetDepartmentRec(request.DepartmentID)
	if err != nil {
		return dbmodels.Employment{}, asFieldError(err, "department_id", "department not found")
	}
	rec := dbmodels.Employment{
		EmployeeID:   employee.ID,
		Employee:     employee,
		PositionID:   position.ID,
		Position:     position,
		GroupID:      request.GroupID,
		DepartmentID: department.ID,
		Department:   department,
		SinceDate:    since,
		UntilDate:    until,
	}
	for _, group := range position.Groups {
		if group.ID == rec.GroupID {
			rec.Group = &group
			break
		}
	}
	if err = rec.Validate(); err != nil {
		return dbmodels.Employment{}, err
	}
	return rec, nil
}

func asFieldError(err error, field, message string) error {
	if errors.Is(err, models.ErrNotFound) {
		return models.NewValidationError(field, message)
	}
	return err
}
