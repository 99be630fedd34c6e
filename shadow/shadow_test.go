package shadow_test

import (
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/reoring/fluentval/shadow"
)

type geo struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type address struct {
	Street string `json:"street"`
	City   string `json:"city"`
	Geo    *geo   `json:"geo,omitempty"`
}

type Audit struct {
	CreatedBy string `json:"createdBy"`
}

type customer struct {
	Audit
	Name     string            `json:"name"`
	Nickname *string           `json:"nickname"`
	Address  address           `json:"address"`
	Billing  *address          `json:"billing"`
	Tags     []string          `json:"tags"`
	Labels   map[string]string `json:"labels"`
	Secret   string            `json:"-"`
	Renamed  string            `fluentval:"name=alias" json:"renamed"`
	Plain    int
}

type hidden struct {
	Visible  string `json:"visible"`
	internal string
}

type node struct {
	Value string `json:"value"`
	Next  *node  `json:"next"`
}

func lookup[T, F any](t *testing.T, s *shadow.Shadow, acc func(*T) *F) string {
	t.Helper()
	root, ok := s.Root().(*T)
	require.True(t, ok)
	p, found := s.Lookup(acc(root))
	if !found {
		return "<missing>"
	}
	return p
}

func TestShadow_ResolvesNestedPaths(t *testing.T) {
	nick := "bob"
	s := shadow.Build(&customer{Nickname: &nick, Billing: &address{}})
	require.NotNil(t, s)

	assert.Equal(t, "name", lookup(t, s, func(c *customer) *string { return &c.Name }))
	assert.Equal(t, "address", lookup(t, s, func(c *customer) *address { return &c.Address }))
	assert.Equal(t, "address.city", lookup(t, s, func(c *customer) *string { return &c.Address.City }))
	assert.Equal(t, "address.street", lookup(t, s, func(c *customer) *string { return &c.Address.Street }))
	assert.Equal(t, "billing.city", lookup(t, s, func(c *customer) *string { return &c.Billing.City }))
	assert.Equal(t, "billing", lookup(t, s, func(c *customer) **address { return &c.Billing }))
	assert.Equal(t, "billing", lookup(t, s, func(c *customer) *address { return c.Billing }))
	assert.Equal(t, "nickname", lookup(t, s, func(c *customer) *string { return c.Nickname }))
	assert.Equal(t, "alias", lookup(t, s, func(c *customer) *string { return &c.Renamed }))
	assert.Equal(t, "Plain", lookup(t, s, func(c *customer) *int { return &c.Plain }))
	assert.Equal(t, "createdBy", lookup(t, s, func(c *customer) *string { return &c.CreatedBy }))
	assert.Equal(t, "", lookup(t, s, func(c *customer) *customer { return c }))
}

func TestShadow_LeavesAndSkippedFields(t *testing.T) {
	s := shadow.Build(&customer{Tags: []string{"a"}})

	assert.Equal(t, "tags", lookup(t, s, func(c *customer) *[]string { return &c.Tags }))
	assert.Equal(t, "<missing>", lookup(t, s, func(c *customer) *string { return &c.Tags[0] }))
	assert.Equal(t, "labels", lookup(t, s, func(c *customer) *map[string]string { return &c.Labels }))
	assert.Equal(t, "<missing>", lookup(t, s, func(c *customer) *string { return &c.Secret }))

	var nilHidden *hidden
	h := shadow.Build(nilHidden)
	assert.Equal(t, "visible", lookup(t, h, func(v *hidden) *string { return &v.Visible }))
	assert.Equal(t, "<missing>", lookup(t, h, func(v *hidden) *string { return &v.internal }))

	local := "x"
	assert.Equal(t, "<missing>", lookup(t, s, func(c *customer) *string { return &local }))
}

func TestShadow_NilPointerIsLeafUnlessZeroFilled(t *testing.T) {
	plain := shadow.Build(&customer{})
	assert.Equal(t, "billing", lookup(t, plain, func(c *customer) **address { return &c.Billing }))
	assert.Equal(t, "billing", lookup(t, plain, func(c *customer) *address { return c.Billing }))
	assert.Equal(t, "nickname", lookup(t, plain, func(c *customer) *string { return c.Nickname }))
	assert.Equal(t, "<missing>", lookup(t, plain, func(c *customer) *string { return &c.Billing.City }))

	filled := shadow.Build(&customer{}, shadow.WithZeroFill(true))
	assert.Equal(t, "billing.city", lookup(t, filled, func(c *customer) *string { return &c.Billing.City }))
	assert.Equal(t, "billing.geo.lat", lookup(t, filled, func(c *customer) *float64 { return &c.Billing.Geo.Lat }))
	assert.Equal(t, "nickname", lookup(t, filled, func(c *customer) *string { return c.Nickname }))
}

func TestShadow_SelfReferenceIsBounded(t *testing.T) {
	s := shadow.Build(&node{}, shadow.WithZeroFill(true), shadow.WithMaxDepth(6))
	assert.Equal(t, "next.next.value", lookup(t, s, func(n *node) *string { return &n.Next.Next.Value }))
	root := s.Root().(*node)
	assert.Nil(t, root.Next.Next.Next.Next)
	assert.Equal(t, "next.next.next.next", lookup(t, s, func(n *node) **node { return &n.Next.Next.Next.Next }))
}

func TestShadow_CyclicModelFallsBackToZeroValue(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	c := shadow.NewCache(shadow.WithLogger(zap.New(core)))

	n := &node{Value: "a"}
	n.Next = &node{Value: "b", Next: n}
	s := c.Load(n)
	require.NotNil(t, s)

	root := s.Root().(*node)
	assert.Empty(t, root.Value)
	assert.Equal(t, "value", lookup(t, s, func(n *node) *string { return &n.Value }))
	assert.Equal(t, "next", lookup(t, s, func(n *node) *node { return n.Next }))
	assert.Equal(t, 1, logs.FilterMessage("shadow clone failed, using zero value").Len())
}

func TestShadow_SelfLoop(t *testing.T) {
	n := &node{Value: "loop"}
	n.Next = n
	s := shadow.Build(n)
	require.NotNil(t, s)
	assert.Equal(t, "value", lookup(t, s, func(n *node) *string { return &n.Value }))
}

func TestShadow_CyclesThroughMapsAndSlices(t *testing.T) {
	type graph struct {
		Name  string            `json:"name"`
		Peers []*graph          `json:"peers"`
		Index map[string]*graph `json:"index"`
	}
	g := &graph{Name: "root", Index: map[string]*graph{}}
	g.Peers = []*graph{g}
	assert.Equal(t, "name", lookup(t, shadow.Build(g), func(g *graph) *string { return &g.Name }))

	h := &graph{Name: "root", Index: map[string]*graph{}}
	h.Index["self"] = h
	assert.Equal(t, "name", lookup(t, shadow.Build(h), func(g *graph) *string { return &g.Name }))
}

func TestShadow_SharedPointerIsCopied(t *testing.T) {
	type pair struct {
		Home *address `json:"home"`
		Work *address `json:"work"`
	}
	shared := &address{City: "Kyoto"}
	s := shadow.Build(&pair{Home: shared, Work: shared})

	root := s.Root().(*pair)
	require.NotNil(t, root.Home)
	assert.Equal(t, "Kyoto", root.Home.City)
	assert.Equal(t, "home.city", lookup(t, s, func(p *pair) *string { return &p.Home.City }))
}

func TestShadow_DeepChainBeyondMaxDepth(t *testing.T) {
	head := &node{Value: "0"}
	cur := head
	for i := 0; i < 10; i++ {
		cur.Next = &node{Value: "n"}
		cur = cur.Next
	}

	s := shadow.Build(head, shadow.WithMaxDepth(4))
	assert.Empty(t, s.Root().(*node).Value)
	assert.Equal(t, "next", lookup(t, s, func(n *node) *node { return n.Next }))

	s = shadow.Build(head)
	assert.Equal(t, "0", s.Root().(*node).Value)
	assert.Equal(t, "next.next.value", lookup(t, s, func(n *node) *string { return &n.Next.Next.Value }))
}

func TestShadow_IsIndependentOfModel(t *testing.T) {
	model := &customer{Billing: &address{City: "Osaka"}}
	c := shadow.NewCache()
	s := c.Load(model)

	model.Billing = nil
	model.Name = "changed"

	root := s.Root().(*customer)
	require.NotNil(t, root.Billing)
	assert.Equal(t, "Osaka", root.Billing.City)
	assert.Empty(t, root.Name)
	assert.Equal(t, "billing.city", lookup(t, s, func(c *customer) *string { return &c.Billing.City }))

	root.Address.City = "mutated"
	assert.Empty(t, model.Address.City)
}

func TestShadow_NonStructModel(t *testing.T) {
	v := "value"
	s := shadow.Build(&v)
	assert.Equal(t, "", lookup(t, s, func(p *string) *string { return p }))
	assert.Empty(t, s.Paths())
}

func TestShadow_Paths(t *testing.T) {
	s := shadow.Build(&address{})
	assert.Equal(t, []string{"city", "geo", "street"}, s.Paths())
}

func TestCache_MemoizesPerType(t *testing.T) {
	c := shadow.NewCache()
	first := c.Load(&customer{Name: "first"})
	second := c.Load(&customer{Name: "second"})
	assert.Same(t, first, second)
	assert.Equal(t, 1, c.Len())

	other := c.Load(&address{})
	assert.NotSame(t, first, other)
	assert.Equal(t, 2, c.Len())

	c.Reset()
	assert.Equal(t, 0, c.Len())
}

func TestCache_LoadRejectsNonPointer(t *testing.T) {
	c := shadow.NewCache()
	assert.Nil(t, c.Load(customer{}))
	assert.Nil(t, c.Load(nil))

	var nilModel *customer
	s := c.Load(nilModel)
	require.NotNil(t, s)
	assert.Equal(t, reflect.TypeOf(customer{}), s.Type())
}

func TestCache_ConcurrentLoadsConverge(t *testing.T) {
	c := shadow.NewCache()
	const n = 32
	got := make([]*shadow.Shadow, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = c.Load(&customer{})
		}(i)
	}
	wg.Wait()
	for i := 1; i < n; i++ {
		assert.Same(t, got[0], got[i])
	}
	assert.Equal(t, 1, c.Len())
}

func TestResolveStructKey(t *testing.T) {
	typ := reflect.TypeOf(struct {
		A string `fluentval:"name=alpha" json:"a"`
		B string `json:"b,omitempty"`
		C string `json:",omitempty"`
		D string `json:"-"`
		E string
		F string `fluentval:"-"`
	}{})
	want := []string{"alpha", "b", "C", "-", "E", "-"}
	for i, w := range want {
		assert.Equal(t, w, shadow.ResolveStructKey(typ.Field(i)), typ.Field(i).Name)
	}
}

func TestJoinPath(t *testing.T) {
	assert.Equal(t, "a", shadow.JoinPath("", "a"))
	assert.Equal(t, "a", shadow.JoinPath("a", ""))
	assert.Equal(t, "a.b", shadow.JoinPath("a", "b"))
}
