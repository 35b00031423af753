// Package catalog models the message catalogs behind NLS resolution: the
// default keys document, the flat default message sequence, and language pack
// translation documents, plus the merge that produces a translated sequence.
//
// # Catalog Shape
//
// The build pipeline emits two files that together form the default catalog.
// nls.keys.json lists modules and their keys in declaration order:
//
//	[
//	  ["vs/editor/editor", ["save", "revert"]],
//	  ["vs/workbench/main", ["quit"]]
//	]
//
// nls.messages.json is a flat array of the untranslated strings, one per key,
// in exactly the order the keys document declares:
//
//	["Save", "Revert File", "Quit"]
//
// The Nth key across modules-then-keys iteration owns the Nth message. That
// correspondence is the contract every consumer relies on; runtime code looks
// messages up by integer index, never by key.
//
// # Merging
//
// A pack translation document groups translated strings by module under a
// top-level "contents" object. Merge walks the keys document in order and
// picks the pack translation when present and non-empty, falling back to the
// default message at the same flat position:
//
//	keys, _ := catalog.LoadKeys("nls.keys.json")
//	defaults, _ := catalog.LoadMessages("nls.messages.json")
//	pack, _ := catalog.LoadTranslations("/packs/fr.json")
//
//	messages, err := catalog.Merge(keys, defaults, pack)
//	if err != nil {
//		// Counts disagree between the two default catalog files.
//	}
//
// The output always has the same order and length as the default sequence.
//
// # Runtime Lookup
//
// Bundle wraps a keys document and a message sequence for consumption:
//
//	bundle, err := catalog.LoadBundle("nls.keys.json", cachedMessagesPath)
//	if err != nil {
//		// Fall back to the default catalog.
//	}
//
//	msg, _ := bundle.Lookup("vs/editor/editor", "save")
//	msg, _ = bundle.ByIndex(0) // same message, hot path
//
//	fmt.Println(catalog.Format("Opening {0} of {1}", 3, 10))
package catalog
