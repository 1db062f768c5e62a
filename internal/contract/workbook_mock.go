package contract

import (
	"github.com/huangsam/vendorrank/schema"
	"github.com/stretchr/testify/mock"
)

// MockWorkbookLoader is a mock implementation of WorkbookLoader for testing.
type MockWorkbookLoader struct {
	mock.Mock
}

var _ WorkbookLoader = &MockWorkbookLoader{} // Compile-time check

// Load implements the WorkbookLoader interface.
func (m *MockWorkbookLoader) Load(path string, layout schema.WorkbookLayout) (schema.Workbook, error) {
	args := m.Called(path, layout)
	wb, _ := args.Get(0).(schema.Workbook)
	return wb, args.Error(1)
}
