package testutils

import (
	"github.com/itbasis/go-clock"
)

type TestController struct {
	Clock      clock.Clock
	fakeSheets *FakeSheetsServer
}

func (c *TestController) Close() {
	c.fakeSheets.Close()
}

func (c *TestController) SheetsURL() string {
	return c.fakeSheets.URL()
}

func NewTestController(db *TestDB) *TestController {
	return &TestController{
		Clock:      db.Clock,
		fakeSheets: NewFakeSheetsServer(),
	}
}
