package batch

import (
	"path/filepath"
	"strings"
)

// OutputPath derives where the transformed copy of src goes. The source
// tree's shape below srcRoot is mirrored below outRoot, the file stem
// gains the suffix, and the extension is the forced one when given, else
// the source's own, lowercased either way. Pure path arithmetic, no
// filesystem access.
func OutputPath(src, srcRoot, outRoot, suffix, forceExt string) (string, error) {
	rel, err := filepath.Rel(srcRoot, src)
	if err != nil {
		return "", err
	}
	ext := filepath.Ext(rel)
	stem := strings.TrimSuffix(filepath.Base(rel), ext)

	if forceExt != "" {
		ext = "." + strings.TrimPrefix(strings.ToLower(forceExt), ".")
	} else {
		ext = strings.ToLower(ext)
	}
	return filepath.Join(outRoot, filepath.Dir(rel), stem+suffix+ext), nil
}
