package actions

import (
	"github.com/pkg/errors"
	"github.com/richimp95/Project-Sparkify-AWS/aws/s3"
	"github.com/richimp95/Project-Sparkify-AWS/helper"
	"github.com/richimp95/Project-Sparkify-AWS/logger"
	"github.com/richimp95/Project-Sparkify-AWS/rdbms"
	"github.com/richimp95/Project-Sparkify-AWS/stats"
	"github.com/richimp95/Project-Sparkify-AWS/warehouse"
	"github.com/rs/xid"
	"golang.org/x/net/context"
)

// LoadConfig carries the switches for a full ETL run.
type LoadConfig struct {
	Settings         SettingsGetter
	StageOnly        bool
	TransformOnly    bool
	SkipS3Check      bool
	ExportConfigType string
	LogLevel         string `errorTxt:"log level" mandatory:"yes"`
	StackDumpOnPanic bool
}

// newS3Client is swappable so tests can run the pre-flight check without AWS.
var newS3Client = s3.NewBasicClient

// RunLoad executes the two-stage pipeline: bulk-copy the staging tables from S3,
// then transform staging into the star schema. Control flow is linear and
// synchronous on a single connection; the first failure aborts the run.
func RunLoad(cfg *LoadConfig) error {
	if cfg.ExportConfigType != "" { // if the user wants the plan on STDOUT...
		cfg.LogLevel = "error"
	}
	log := logger.NewLogger("sparkify", xid.New().String(), cfg.LogLevel, cfg.StackDumpOnPanic)
	// Validate switches.
	if err := helper.ValidateStructIsPopulated(cfg); err != nil {
		return err
	}
	if cfg.StageOnly && cfg.TransformOnly {
		return errors.New("choose one of stage-only and transform-only, not both")
	}
	// Load and validate settings.
	settings, err := LoadSettings(cfg.Settings)
	if err != nil {
		return err
	}
	// Build the plan.
	groups := make([][]warehouse.Statement, 0, 2)
	if !cfg.TransformOnly {
		groups = append(groups, settings.Copy.CopyStatements())
	}
	if !cfg.StageOnly {
		groups = append(groups, warehouse.InsertStatements())
	}
	plan := warehouse.NewPlan(groups...)
	if cfg.ExportConfigType != "" { // if the user wants a dry run...
		return exportPlan(cfg.ExportConfigType, plan)
	}
	// Check the storage locations before touching the warehouse.
	if !cfg.TransformOnly && !cfg.SkipS3Check {
		if err := checkS3Locations(log, settings.Copy); err != nil {
			return err
		}
	}
	// Connect to the warehouse. The connection is released on every exit path.
	db, err := rdbms.OpenDbConnection(log, settings.Warehouse)
	if err != nil {
		return errors.Wrap(err, "unable to connect to the warehouse")
	}
	defer db.Close()
	ctx := context.Background()
	runStats := stats.NewRunStats(log)
	defer runStats.LogStats()
	// Stage 1: staging loader.
	if !cfg.TransformOnly {
		l := warehouse.NewLoader(log, db, settings.Copy, runStats)
		if err := l.Load(ctx); err != nil {
			return err
		}
	}
	// Stage 2: warehouse transformer. Stage 1 has committed so the inserts
	// observe the loaded staging rows.
	if !cfg.StageOnly {
		t := warehouse.NewTransformer(log, db, runStats)
		if err := t.Transform(ctx); err != nil {
			return err
		}
	}
	log.Info("ETL run complete")
	return nil
}

// checkS3Locations fails fast when a configured prefix is unreachable or empty,
// or when the jsonpaths object is missing, since COPY errors from Redshift for
// these cases are less direct.
func checkS3Locations(log logger.Logger, cfg warehouse.CopyConfig) error {
	prefixes := []struct {
		name string
		url  string
	}{
		{"event-log", cfg.EventsPath},
		{"song-catalog", cfg.SongsPath},
	}
	for _, p := range prefixes {
		bucket, err := s3.ParseDSN(p.url, cfg.Region)
		if err != nil {
			return errors.Wrapf(err, "invalid %v location %q", p.name, p.url)
		}
		client := newS3Client(bucket.Name, bucket.Region, bucket.Prefix)
		keys, err := client.List("")
		if err != nil {
			return errors.Wrapf(err, "unable to list %v location %q", p.name, p.url)
		}
		if len(keys) == 0 {
			return errors.Errorf("no objects found at %v location %q", p.name, p.url)
		}
		log.Debug("found ", len(keys), " objects at ", p.name, " location ", p.url)
	}
	// The jsonpaths spec is a single object.
	bucket, err := s3.ParseDSN(cfg.EventsJsonPath, cfg.Region)
	if err != nil {
		return errors.Wrapf(err, "invalid jsonpaths location %q", cfg.EventsJsonPath)
	}
	client := newS3Client(bucket.Name, bucket.Region, "")
	if _, err := client.Get(bucket.Prefix); err != nil {
		return errors.Wrapf(err, "unable to fetch jsonpaths object %q", cfg.EventsJsonPath)
	}
	return nil
}
