package rbac

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

type RolePermissionRow struct {
	Role     string
	Resource string
	Action   string
}

type RoleInheritanceRow struct {
	Role   string
	Parent string
}

//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	GetRolePermissions() ([]RolePermissionRow, error)
	GetRoleInheritance() ([]RoleInheritanceRow, error)
}

// csvRepository reads casbin-style policy lines:
//
//	p, <role>, <resource>, <action>
//	g, <role>, <parent role>
type csvRepository struct {
	load func() ([]byte, error)
}

func NewCSVRepository(data []byte) Repository {
	return &csvRepository{load: func() ([]byte, error) { return data, nil }}
}

// NewFileRepository re-reads the file on every load so policy edits apply on Reload.
func NewFileRepository(path string) Repository {
	return &csvRepository{load: func() ([]byte, error) { return os.ReadFile(path) }}
}

func (r *csvRepository) records() ([][]string, error) {
	data, err := r.load()
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	var out [][]string
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("parse rbac policy: %w", err)
		}
		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}
		out = append(out, rec)
	}
}

func (r *csvRepository) GetRolePermissions() ([]RolePermissionRow, error) {
	recs, err := r.records()
	if err != nil {
		return nil, err
	}

	var rows []RolePermissionRow
	for _, rec := range recs {
		if rec[0] != "p" {
			continue
		}
		if len(rec) != 4 {
			return nil, fmt.Errorf("parse rbac policy: permission line needs 4 fields, got %v", rec)
		}
		rows = append(rows, RolePermissionRow{Role: rec[1], Resource: rec[2], Action: rec[3]})
	}
	return rows, nil
}

func (r *csvRepository) GetRoleInheritance() ([]RoleInheritanceRow, error) {
	recs, err := r.records()
	if err != nil {
		return nil, err
	}

	var rows []RoleInheritanceRow
	for _, rec := range recs {
		if rec[0] != "g" {
			continue
		}
		if len(rec) != 3 {
			return nil, fmt.Errorf("parse rbac policy: grouping line needs 3 fields, got %v", rec)
		}
		rows = append(rows, RoleInheritanceRow{Role: rec[1], Parent: rec[2]})
	}
	return rows, nil
}
