package usecase_test

import (
	"time"

	"github.com/spynet/spynet-api/internal/domain"
	"github.com/spynet/spynet-api/internal/domain/entity"
	"github.com/spynet/spynet-api/internal/domain/repository"
)

// Fakes en memoria de los puertos de persistencia para los tests de use cases.

type fakeUserRepo struct {
	users       map[string]*entity.User
	assignments *fakeAssignmentRepo
}

func newFakeUserRepo(assignments *fakeAssignmentRepo) *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User), assignments: assignments}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) List() ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeUserRepo) ListByRole(role string) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if u.Role == role {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) ListDetectivesByManager(managerID string) ([]*entity.User, error) {
	ids, _ := r.assignments.DetectiveIDsForManager(managerID)
	var out []*entity.User
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeCaseRepo struct {
	cases map[string]*entity.Case
}

func newFakeCaseRepo() *fakeCaseRepo {
	return &fakeCaseRepo{cases: make(map[string]*entity.Case)}
}

func (r *fakeCaseRepo) Create(c *entity.Case) error {
	cp := *c
	r.cases[c.ID] = &cp
	return nil
}

func (r *fakeCaseRepo) GetByID(id string) (*entity.Case, error) {
	c, ok := r.cases[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCaseRepo) List(f repository.CaseFilter) ([]*entity.Case, error) {
	var out []*entity.Case
	for _, c := range r.cases {
		if f.Status != "" && c.Status != f.Status {
			continue
		}
		if f.DetectiveID != "" && !c.AssignedTo(f.DetectiveID) {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeCaseRepo) ListByDetective(detectiveID, status string) ([]*entity.Case, error) {
	var out []*entity.Case
	for _, c := range r.cases {
		if !c.AssignedTo(detectiveID) {
			continue
		}
		if status != "" && c.Status != status {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeCaseRepo) ListUnassignedByManagers(managerIDs []string, status string) ([]*entity.Case, error) {
	allowed := make(map[string]struct{}, len(managerIDs))
	for _, id := range managerIDs {
		allowed[id] = struct{}{}
	}
	var out []*entity.Case
	for _, c := range r.cases {
		if c.DetectiveID != nil {
			continue
		}
		if _, ok := allowed[c.ManagerID]; !ok {
			continue
		}
		if status != "" && c.Status != status {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeCaseRepo) Update(id string, upd entity.CaseUpdate) (*entity.Case, error) {
	c, ok := r.cases[id]
	if !ok {
		return nil, domain.ErrCaseNotFound
	}
	if upd.Title != nil {
		c.Title = *upd.Title
	}
	if upd.Details != nil {
		c.Details = *upd.Details
	}
	if upd.Location != nil {
		c.Location = *upd.Location
	}
	if upd.Status != nil {
		c.Status = *upd.Status
	}
	if upd.DetectiveID != nil {
		if *upd.DetectiveID == "" {
			c.DetectiveID = nil
		} else {
			v := *upd.DetectiveID
			c.DetectiveID = &v
		}
	}
	c.UpdatedAt = time.Now()
	cp := *c
	return &cp, nil
}

func (r *fakeCaseRepo) Delete(id string) error {
	delete(r.cases, id)
	return nil
}

type assignmentKey struct{ detectiveID, managerID string }

type fakeAssignmentRepo struct {
	pairs map[assignmentKey]struct{}
}

func newFakeAssignmentRepo() *fakeAssignmentRepo {
	return &fakeAssignmentRepo{pairs: make(map[assignmentKey]struct{})}
}

func (r *fakeAssignmentRepo) Create(a *entity.ManagerAssignment) error {
	k := assignmentKey{a.DetectiveID, a.ManagerID}
	if _, ok := r.pairs[k]; ok {
		return domain.ErrDuplicate
	}
	r.pairs[k] = struct{}{}
	return nil
}

func (r *fakeAssignmentRepo) Delete(detectiveID, managerID string) error {
	k := assignmentKey{detectiveID, managerID}
	if _, ok := r.pairs[k]; !ok {
		return domain.ErrNotFound
	}
	delete(r.pairs, k)
	return nil
}

func (r *fakeAssignmentRepo) ManagerIDsForDetective(detectiveID string) ([]string, error) {
	var out []string
	for k := range r.pairs {
		if k.detectiveID == detectiveID {
			out = append(out, k.managerID)
		}
	}
	return out, nil
}

func (r *fakeAssignmentRepo) DetectiveIDsForManager(managerID string) ([]string, error) {
	var out []string
	for k := range r.pairs {
		if k.managerID == managerID {
			out = append(out, k.detectiveID)
		}
	}
	return out, nil
}
