package engine_test

import (
	"testing"

	"mysql2pg/internal/dialect"
	"mysql2pg/internal/engine"
	"mysql2pg/internal/schema"
	"mysql2pg/internal/typemap"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func usersTable() *schema.Table {
	return &schema.Table{
		Name: "users",
		Columns: []*schema.Column{
			{Name: "id", DataType: "int", ColumnType: "int(11)", IsPrimaryKey: true, IsAutoInc: true},
			{Name: "email", DataType: "varchar", ColumnType: "varchar(120)"},
			{Name: "bio", DataType: "text", ColumnType: "text", IsNullable: true},
		},
	}
}

func newProvisioner(target *fakeExecer) *engine.Provisioner {
	return engine.NewProvisioner(target, dialect.ForDriver("postgres"), typemap.New(nil))
}

func TestProvisionCreate(t *testing.T) {
	target := &fakeExecer{}
	p := newProvisioner(target)

	dec, err := p.Provision(usersTable(), false, false, false)
	require.NoError(t, err)
	assert.Equal(t, engine.DecisionCreate, dec)

	require.Len(t, target.queries, 1)
	assert.Equal(t,
		`CREATE TABLE "users" ("id" serial NOT NULL, "email" varchar(120) NOT NULL, "bio" text, PRIMARY KEY ("id"))`,
		target.queries[0])
}

func TestProvisionRecreate(t *testing.T) {
	target := &fakeExecer{}
	p := newProvisioner(target)

	dec, err := p.Provision(usersTable(), true, true, false)
	require.NoError(t, err)
	assert.Equal(t, engine.DecisionRecreate, dec)

	require.Len(t, target.queries, 2)
	assert.Equal(t, `DROP TABLE "users" CASCADE`, target.queries[0])
	assert.Contains(t, target.queries[1], `CREATE TABLE "users"`)
}

func TestProvisionTruncate(t *testing.T) {
	target := &fakeExecer{}
	p := newProvisioner(target)

	dec, err := p.Provision(usersTable(), true, false, true)
	require.NoError(t, err)
	assert.Equal(t, engine.DecisionTruncate, dec)

	require.Len(t, target.queries, 1)
	assert.Equal(t, `TRUNCATE TABLE "users" RESTART IDENTITY CASCADE`, target.queries[0])
}

func TestProvisionSkipIssuesNoDDL(t *testing.T) {
	target := &fakeExecer{}
	p := newProvisioner(target)

	dec, err := p.Provision(usersTable(), true, false, false)
	require.NoError(t, err)
	assert.Equal(t, engine.DecisionSkip, dec)
	assert.Empty(t, target.queries)
}

func TestProvisionDDLFailure(t *testing.T) {
	target := &fakeExecer{errFor: func(string, int) error {
		return &pq.Error{Code: "42501"}
	}}
	p := newProvisioner(target)

	dec, err := p.Provision(usersTable(), false, false, false)
	assert.Error(t, err)
	assert.Equal(t, engine.DecisionCreate, dec)
	assert.True(t, engine.IsPermission(err))
}

func TestProvisionCompositePrimaryKey(t *testing.T) {
	table := &schema.Table{
		Name: "order_items",
		Columns: []*schema.Column{
			{Name: "order_id", ColumnType: "int(11)", IsPrimaryKey: true},
			{Name: "item_id", ColumnType: "int(11)", IsPrimaryKey: true},
			{Name: "qty", ColumnType: "int(11)"},
		},
	}
	target := &fakeExecer{}
	p := newProvisioner(target)

	_, err := p.Provision(table, false, false, false)
	require.NoError(t, err)
	require.Len(t, target.queries, 1)
	assert.Contains(t, target.queries[0], `PRIMARY KEY ("order_id", "item_id")`)
}
