package accuracy

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/metaqa/internal/findings"
	"github.com/vvka-141/metaqa/internal/record"
	"github.com/vvka-141/metaqa/internal/schema"
	"github.com/vvka-141/metaqa/pkg/metaqa"
)

func study(accession, title string, contributors ...string) *record.Tree {
	t := record.NewTree("studies/" + accession + ".json")
	t.Set("accession", record.Scalar(accession)).Set("title", record.Scalar(title))
	for _, c := range contributors {
		t.AddChild("contributors").Set("name", record.Scalar(c))
	}
	return t
}

func dataFile(name, parentKey, title, creator string) *record.Tree {
	t := record.NewTree("files/" + name + ".json")
	t.Set("file_name", record.Scalar(name))
	cite := t.Group("citation")
	cite.Set("accession", record.Scalar(parentKey)).Set("title", record.Scalar(title))
	if creator != "" {
		cite.Set("creator", record.Scalar(creator))
	}
	return t
}

var citationSpec = Spec{
	KeyPath: "citation/accession",
	Pairs: []FieldPair{
		{Name: "title", ChildPath: "citation/title", ParentPath: "title"},
		{Name: "creator", ChildPath: "citation/creator", ParentPath: "contributors/name", Compare: PersonName},
	},
}

func lookupOf(parents ...*record.Tree) Lookup {
	l := make(Lookup)
	for _, p := range parents {
		v, _ := p.Get("accession")
		l[v.Text()] = p
	}
	return l
}

func metric(t *testing.T, ms []metaqa.MetricResult, name string) metaqa.Content {
	t.Helper()
	for _, m := range ms {
		if m.Metric == name {
			return m.Content
		}
	}
	t.Fatalf("metric %q not emitted", name)
	return nil
}

func TestEvaluate_MismatchedTitle(t *testing.T) {
	acc := findings.NewAccumulator()
	child := dataFile("f1", "X123", "Foo", "")

	res := Evaluate("files", []record.Record{child}, lookupOf(study("X123", "Bar")), citationSpec, acc)

	got := acc.Findings()
	require.Len(t, got, 1)
	assert.Equal(t, metaqa.IssueInaccurateValue, got[0].IssueType)
	assert.Equal(t, "/citation/title", got[0].Pointer)
	assert.Equal(t, "Foo", got[0].Original)
	assert.Equal(t, "Bar", got[0].Suggested)
	assert.Equal(t, 1, res.Mismatched)
	assert.Equal(t, "0.00%", metric(t, res.Metrics, "accuracy rate").(metaqa.Rate).String())
	assert.Equal(t, metaqa.Breakdown{"title": 1}, metric(t, res.Metrics, "mismatches by field"))
	assert.True(t, acc.IsInvalid(child.ID()))
}

func TestEvaluate_UnresolvedReferenceExcludedFromRate(t *testing.T) {
	acc := findings.NewAccumulator()
	children := []record.Record{
		dataFile("f1", "Y999", "Foo", ""),
		dataFile("f2", "X123", "Bar", ""),
		dataFile("f3", "X123", "Baz", ""),
	}

	res := Evaluate("files", children, lookupOf(study("X123", "Bar")), citationSpec, acc)

	assert.Equal(t, 3, res.Total)
	assert.Equal(t, 1, res.Unresolved)
	assert.Equal(t, 2, res.Resolved)
	assert.Equal(t, 1, res.Mismatched)
	assert.Equal(t, "50.00%", metric(t, res.Metrics, "accuracy rate").(metaqa.Rate).String(),
		"unresolved children are excluded from the rate")

	got := acc.Findings()
	require.Len(t, got, 2)
	assert.Equal(t, metaqa.IssueUnresolvableRef, got[0].IssueType)
	assert.Equal(t, "/citation/accession", got[0].Pointer)
	assert.Equal(t, "Y999", got[0].Original)
	assert.Equal(t, metaqa.IssueInaccurateValue, got[1].IssueType)
	assert.Equal(t, []string{"files/f1.json", "files/f3.json"}, acc.InvalidIDs())
}

func TestEvaluate_MissingKey(t *testing.T) {
	acc := findings.NewAccumulator()
	child := record.NewRow("files.csv", 2, []string{"file_name"}, []string{"a.csv"})

	res := Evaluate("files.csv", []record.Record{child}, Lookup{}, citationSpec, acc)

	assert.Equal(t, 1, res.Unresolved)
	assert.False(t, metric(t, res.Metrics, "accuracy rate").(metaqa.Rate).Defined())
	require.Equal(t, 1, acc.Len())
	assert.Equal(t, "citation/accession", acc.Findings()[0].Pointer)
}

func TestEvaluate_PersonNamePairAgainstRepeatedParentField(t *testing.T) {
	parents := lookupOf(study("X1", "T", "Alan Turing", "Ada Lovelace"))
	acc := findings.NewAccumulator()

	res := Evaluate("files", []record.Record{
		dataFile("ok", "X1", "T", "Lovelace, Ada"),
		dataFile("bad", "X1", "T", "Hopper, Grace"),
	}, parents, citationSpec, acc)

	assert.Equal(t, 1, res.Mismatched)
	require.Equal(t, 1, acc.Len())
	f := acc.Findings()[0]
	assert.Equal(t, "/citation/creator", f.Pointer)
	assert.Equal(t, "Alan Turing", f.Suggested, "first canonical value is suggested")
}

func TestEvaluate_UnfilledSidesAreSkipped(t *testing.T) {
	acc := findings.NewAccumulator()
	res := Evaluate("files", []record.Record{dataFile("f", "X1", "", "")},
		lookupOf(study("X1", "Title")), citationSpec, acc)

	assert.Equal(t, 0, res.Mismatched)
	assert.Equal(t, 0, acc.Len())
	assert.Equal(t, "100.00%", metric(t, res.Metrics, "accuracy rate").(metaqa.Rate).String())
}

func TestEvaluate_EmptyAndIdempotent(t *testing.T) {
	empty := Evaluate("none", nil, Lookup{}, citationSpec, findings.NewAccumulator())
	assert.False(t, metric(t, empty.Metrics, "accuracy rate").(metaqa.Rate).Defined())

	children := []record.Record{dataFile("a", "X1", "Foo", ""), dataFile("b", "nope", "", "")}
	lookup := lookupOf(study("X1", "Bar"))
	acc1, acc2 := findings.NewAccumulator(), findings.NewAccumulator()

	r1 := Evaluate("files", children, lookup, citationSpec, acc1)
	r2 := Evaluate("files", children, lookup, citationSpec, acc2)

	if diff := cmp.Diff(r1, r2); diff != "" {
		t.Errorf("results differ (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(acc1.Sorted(), acc2.Sorted()); diff != "" {
		t.Errorf("findings differ (-first +second):\n%s", diff)
	}
}

func TestEvaluate_FlatChildResolvedThroughClassifier(t *testing.T) {
	datafile, err := schema.Builtin().Schema("datafile")
	require.NoError(t, err)
	studySchema, err := schema.Builtin().Schema("study")
	require.NoError(t, err)

	header := []string{"file_name", "Accession", "Title?"}
	children := []record.Record{
		record.NewRow("files.csv", 1, header, []string{"a.csv", "X1", "Soil"}),
		record.NewRow("files.csv", 2, header, []string{"b.csv", "X1", "Other"}),
	}
	spec := citationSpec
	spec.Child = record.NewMatcher(schema.NewClassifier(datafile))
	spec.Parent = record.NewMatcher(schema.NewClassifier(studySchema))
	acc := findings.NewAccumulator()

	res := Evaluate("files.csv", children, lookupOf(study("X1", "Soil")), spec, acc)

	assert.Equal(t, 2, res.Resolved)
	assert.Equal(t, 0, res.Unresolved)
	assert.Equal(t, 1, res.Mismatched)
	got := acc.Findings()
	require.Len(t, got, 1)
	assert.Equal(t, metaqa.IssueInaccurateValue, got[0].IssueType)
	assert.Equal(t, "Title?", got[0].Pointer)
	assert.Equal(t, "Soil", got[0].Suggested)

	literal := Evaluate("files.csv", children, lookupOf(study("X1", "Soil")), citationSpec, findings.NewAccumulator())
	assert.Equal(t, 2, literal.Unresolved, "a literal lookup misses the flat headers")
}
