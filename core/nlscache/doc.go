// Package nlscache manages the on-disk translation cache tree that locale
// resolution reads and writes. It decides whether a previously materialized
// message bundle can be reused, recovers from caches marked corrupted,
// persists materialized output atomically, and reaps cache trees that have
// gone unused past a retention window.
//
// # Cache Layout
//
// All cache state lives under <userDataPath>/clp, one subtree per language
// pack identity. The pack identity is the pack's content hash joined with
// the resolved locale, so a pack update or a locale switch naturally lands
// in a fresh subtree:
//
//	<userDataPath>/clp/<hash>.<locale>/tcf.json
//	<userDataPath>/clp/<hash>.<locale>/corrupted.info
//	<userDataPath>/clp/<hash>.<locale>/<commit>/nls.messages.json
//
// The commit directory is immutable once created. Its existence alone marks
// the cached messages as complete and valid: it only ever comes into being
// through a rename of a fully written staging directory.
//
// # State Check
//
// Check is the decision point of a resolution:
//
//	manager := nlscache.New(userDataPath)
//
//	status, err := manager.Check(ctx, packID, commit)
//	if err != nil {
//		// cache state unknown, fall back to defaults
//	}
//	switch status {
//	case nlscache.StatusHit:
//		// reuse <packRoot>/<commit>/nls.messages.json as-is
//	case nlscache.StatusMiss, nlscache.StatusPurged:
//		// materialize into a staging directory
//	}
//
// A hit refreshes the commit directory's modification time in a detached
// background task, which is how the cleaner learns the pack is still in
// use. A corruption sentinel forces StatusPurged: the whole pack subtree is
// removed first so regeneration starts clean.
//
// # Staged Materialization
//
// Regeneration writes into scratch space and publishes with a rename:
//
//	staging, err := manager.NewStaging(packID, commit)
//	if err != nil {
//		return err
//	}
//
//	if err := staging.WriteMessages(messages); err != nil {
//		staging.Discard()
//		return err
//	}
//	if err := manager.WriteTranslationsConfig(packID, translations); err != nil {
//		staging.Discard()
//		return err
//	}
//
//	return staging.Promote()
//
// Promote tolerates losing a regeneration race: when another process has
// already promoted the same commit, the staged copy is discarded and the
// promotion reports success, because both copies were materialized from
// identical inputs.
//
// # Corruption Protocol
//
// A consumer that detects broken cached messages marks the pack rather than
// repairing it:
//
//	if err := manager.MarkCorrupted(packID); err != nil {
//		return err
//	}
//
// The next Check for that pack removes the subtree wholesale and reports
// StatusPurged, which routes the caller into regeneration.
//
// # Cleaner
//
// Cleaner is the out-of-band reaper the freshness touch exists for. It
// removes pack subtrees whose newest modification time is older than the
// retention window, on a ticker loop with graceful shutdown:
//
//	cleaner, err := nlscache.NewCleaner(userDataPath,
//		nlscache.WithRetention(30*24*time.Hour),
//		nlscache.WithCleanerLogger(logger),
//	)
//	if err != nil {
//		return err
//	}
//
//	go cleaner.Start(ctx)
//	defer cleaner.Stop()
//
//	// or under errgroup:
//	g.Go(cleaner.Run(ctx))
//
// CleanOnce runs a single sweep for one-shot jobs and tests. Configuration
// can come from the environment via Config (NLS_CACHE_RETENTION,
// NLS_CACHE_CHECK_INTERVAL, NLS_CACHE_SHUTDOWN_TIMEOUT) and
// NewCleanerFromConfig.
package nlscache
