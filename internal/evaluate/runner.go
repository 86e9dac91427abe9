package evaluate

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/vvka-141/metaqa/internal/accuracy"
	"github.com/vvka-141/metaqa/internal/checksum"
	"github.com/vvka-141/metaqa/internal/completeness"
	"github.com/vvka-141/metaqa/internal/config"
	"github.com/vvka-141/metaqa/internal/duplicate"
	"github.com/vvka-141/metaqa/internal/files"
	"github.com/vvka-141/metaqa/internal/findings"
	"github.com/vvka-141/metaqa/internal/record"
	"github.com/vvka-141/metaqa/internal/schema"
	"github.com/vvka-141/metaqa/internal/stats"
	"github.com/vvka-141/metaqa/pkg/metaqa"
)

// Runner evaluates configured sources.
// A Runner holds no per-run state; concurrent Run calls are safe as long as
// its collaborators are.
type Runner struct {
	files   files.Provider
	schemas SchemaProvider
	readers ReaderFactory
	lookups LookupBuilder
	logger  metaqa.Logger
	sums    checksum.SHA256
}

// NewRunner creates a Runner with all dependencies injected.
// It panics on nil dependencies, which are programmer errors.
func NewRunner(p files.Provider, schemas SchemaProvider, readers ReaderFactory, lookups LookupBuilder, logger metaqa.Logger) *Runner {
	if p == nil {
		panic("files provider cannot be nil")
	}
	if schemas == nil {
		panic("schema provider cannot be nil")
	}
	if readers == nil {
		panic("reader factory cannot be nil")
	}
	if lookups == nil {
		panic("lookup builder cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Runner{
		files:   p,
		schemas: schemas,
		readers: readers,
		lookups: lookups,
		logger:  logger,
		sums:    checksum.New(),
	}
}

type sourceResult struct {
	report       SourceReport
	acc          *findings.Accumulator
	distribution *completeness.Distribution
}

// Run evaluates every source of cfg and assembles the report.
// cfg must have defaults applied and be valid. Source tasks stop being
// scheduled once ctx is cancelled.
func (r *Runner) Run(ctx context.Context, cfg *config.Config) (*Report, error) {
	parallel := cfg.Parallel
	if parallel <= 0 {
		parallel = metaqa.DefaultParallel
	}

	results := make([]*sourceResult, len(cfg.Sources))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)

	for i, src := range cfg.Sources {
		if gctx.Err() != nil {
			break
		}
		i, src := i, src
		g.Go(func() error {
			res, err := r.runSource(gctx, src)
			if err != nil {
				return fmt.Errorf("source %s: %w", src.Path, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return r.assemble(results)
}

func (r *Runner) assemble(results []*sourceResult) (*Report, error) {
	acc := findings.NewAccumulator()
	report := &Report{}

	var kinds []string
	byKind := make(map[string]*completeness.Distribution)
	records := 0

	for _, res := range results {
		acc.Merge(res.acc)
		report.Sources = append(report.Sources, res.report)
		records += res.report.Records

		kind := res.report.Kind
		if d, ok := byKind[kind]; ok {
			d.Merge(res.distribution)
			continue
		}
		d := completeness.NewDistribution(nil)
		d.Merge(res.distribution)
		byKind[kind] = d
		kinds = append(kinds, kind)
	}

	for _, kind := range kinds {
		d := byKind[kind]
		if err := d.Check(); err != nil {
			return nil, fmt.Errorf("merged %s distribution: %w", kind, err)
		}
		report.Metrics = append(report.Metrics, d.Metrics("kind:"+kind)...)
	}

	report.Findings = acc.Sorted()
	report.Summary = stats.Summarize(report.Findings, len(acc.InvalidIDs()), records)
	report.Metrics = append(report.Metrics, report.Summary.Metrics("run")...)
	report.RunID = runID(report.Sources)

	r.logger.Verbose("run %s: %d record(s), %d finding(s)", report.RunID, records, report.Summary.Findings)
	return report, nil
}

func (r *Runner) runSource(ctx context.Context, src config.SourceConfig) (*sourceResult, error) {
	matches, err := r.files.Glob(src.Path)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no files match %s: %w", src.Path, metaqa.ErrSourceNotFound)
	}

	s, err := r.schemas.Schema(src.Kind)
	if err != nil {
		return nil, err
	}
	classifier := schema.NewClassifier(s)

	reader, err := r.readers(src.Format)
	if err != nil {
		return nil, err
	}

	res := &sourceResult{
		report: SourceReport{Path: src.Path, Kind: s.Kind},
		acc:    findings.NewAccumulator(),
	}

	var records []record.Record
	for _, m := range matches {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		content, err := r.files.ReadFile(m)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", m, err)
		}
		res.report.Files = append(res.report.Files, r.sums.Fingerprint(m, content))

		recs, err := reader.ReadContent(m, content)
		if err != nil {
			return nil, err
		}
		r.logger.Verbose("%s: %d record(s) from %s", src.Path, len(recs), m)
		records = append(records, recs...)
	}

	scope := src.Path
	comp, err := completeness.Evaluate(scope, records, classifier, res.acc)
	if err != nil {
		return nil, err
	}
	res.distribution = comp.Distribution
	res.report.Metrics = append(res.report.Metrics, comp.Metrics...)

	match := record.NewMatcher(classifier)
	dup, err := duplicate.Detect(scope, records, duplicate.IdentityFields(src.Identity...).Using(match), res.acc)
	if err != nil {
		return nil, err
	}
	res.report.Metrics = append(res.report.Metrics, dup.Metrics...)

	if len(src.Nested) > 0 {
		nested, err := duplicate.DetectNestedAll(scope, records, src.Nested, res.acc)
		if err != nil {
			return nil, err
		}
		res.report.Metrics = append(res.report.Metrics, nested.Metrics...)
	}

	if src.Parents != "" {
		metrics, err := r.crossCheck(scope, records, src, match, res.acc)
		if err != nil {
			return nil, err
		}
		res.report.Metrics = append(res.report.Metrics, metrics...)
	}

	res.report.Records = len(records)
	res.report.Invalid = len(res.acc.InvalidIDs())
	r.logger.Verbose("%s: %d record(s), %d finding(s)", src.Path, len(records), res.acc.Len())
	return res, nil
}

func (r *Runner) crossCheck(scope string, records []record.Record, src config.SourceConfig, child record.Matcher, acc *findings.Accumulator) ([]metaqa.MetricResult, error) {
	var parent record.Matcher
	if src.ParentKind != "" {
		s, err := r.schemas.Schema(src.ParentKind)
		if err != nil {
			return nil, fmt.Errorf("parents %s: %w", src.Parents, err)
		}
		parent = record.NewMatcher(schema.NewClassifier(s))
	}

	lookup, err := r.lookups.Build(src.Parents, src.ParentKeyPath, parent)
	if err != nil {
		return nil, fmt.Errorf("parents %s: %w", src.Parents, err)
	}

	spec := accuracy.Spec{KeyPath: src.ParentKey, Child: child, Parent: parent}
	for _, p := range src.Accuracy {
		compare, err := accuracy.ComparatorByName(p.Compare)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", err, metaqa.ErrInvalidConfig)
		}
		spec.Pairs = append(spec.Pairs, accuracy.FieldPair{
			Name:       p.Field,
			ChildPath:  p.Field,
			ParentPath: p.Parent,
			Compare:    compare,
		})
	}

	res := accuracy.Evaluate(scope, records, lookup, spec, acc)
	if res.Unresolved > 0 {
		r.logger.Verbose("%s: %d unresolved parent reference(s)", scope, res.Unresolved)
	}
	return res.Metrics, nil
}
