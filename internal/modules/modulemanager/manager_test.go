package modulemanager

import (
	"errors"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeModule struct {
	id       string
	migrated bool
	inited   bool
	routes   bool
	initErr  error
}

func (m *fakeModule) ID() string   { return m.id }
func (m *fakeModule) Name() string { return "Fake " + m.id }
func (m *fakeModule) Core() bool   { return false }
func (m *fakeModule) Migrate(db *gorm.DB) error {
	m.migrated = true
	return nil
}
func (m *fakeModule) Init() error {
	m.inited = true
	return m.initErr
}
func (m *fakeModule) RegisterRoutes(router *gin.Engine) {
	m.routes = true
}

func TestLoadAll(t *testing.T) {
	r := &ModuleRegistry{modules: make(map[string]Module)}

	a := &fakeModule{id: "system.aaa"}
	b := &fakeModule{id: "system.bbb"}
	r.Register(b)
	r.Register(a)

	require.NoError(t, r.LoadAll(nil))
	assert.True(t, a.migrated)
	assert.True(t, a.inited)
	assert.True(t, b.migrated)
	assert.True(t, b.inited)

	// A second load is a no-op
	a.inited = false
	require.NoError(t, r.LoadAll(nil))
	assert.False(t, a.inited)
}

func TestLoadAll_InitFailureStops(t *testing.T) {
	r := &ModuleRegistry{modules: make(map[string]Module)}

	bad := &fakeModule{id: "system.aaa", initErr: errors.New("boom")}
	after := &fakeModule{id: "system.zzz"}
	r.Register(bad)
	r.Register(after)

	err := r.LoadAll(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "system.aaa")
	// Migration ran for everything, init stopped at the failure
	assert.True(t, after.migrated)
	assert.False(t, after.inited)
}

func TestRegisterRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := &ModuleRegistry{modules: make(map[string]Module)}

	m := &fakeModule{id: "system.aaa"}
	r.Register(m)
	require.NoError(t, r.LoadAll(nil))

	r.RegisterRoutes(gin.New())
	assert.True(t, m.routes)
}

func TestListModules_Sorted(t *testing.T) {
	r := &ModuleRegistry{modules: make(map[string]Module)}
	r.Register(&fakeModule{id: "system.zzz"})
	r.Register(&fakeModule{id: "system.aaa"})
	r.Register(&fakeModule{id: "system.mmm"})

	modules := r.ListModules()
	require.Len(t, modules, 3)
	assert.Equal(t, "system.aaa", modules[0].ID())
	assert.Equal(t, "system.mmm", modules[1].ID())
	assert.Equal(t, "system.zzz", modules[2].ID())
}

func TestReset(t *testing.T) {
	r := &ModuleRegistry{modules: make(map[string]Module)}
	r.Register(&fakeModule{id: "system.aaa"})
	require.NoError(t, r.LoadAll(nil))

	r.Reset()
	assert.Empty(t, r.ListModules())
	require.NoError(t, r.LoadAll(nil))
}
