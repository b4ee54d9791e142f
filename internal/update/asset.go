package update

import "strings"

// SelectAsset chooses the artifact to download for the given context.
// The policy is ordered and first-match-wins over free-form asset names:
//
//  1. packaged Windows: first name ending in ".exe"
//  2. packaged macOS: first name containing "macos" or "darwin"
//  3. packaged Linux: first name containing "linux" that does not end in
//     ".exe" (guards against ambiguous cross-listed names)
//  4. any mode: the synthetic source archive, if present
//
// Release authors name assets however they like, so this is a heuristic,
// not a schema. nil means no automatic artifact is available; that is not
// an error, the caller offers a manual download instead.
func SelectAsset(assets []Asset, ctx ExecutionContext) *Asset {
	if ctx.Packaged {
		switch ctx.OS {
		case "windows":
			for i := range assets {
				if strings.HasSuffix(assets[i].Name, ".exe") {
					return &assets[i]
				}
			}
		case "darwin":
			for i := range assets {
				name := strings.ToLower(assets[i].Name)
				if strings.Contains(name, "macos") || strings.Contains(name, "darwin") {
					return &assets[i]
				}
			}
		case "linux":
			for i := range assets {
				name := strings.ToLower(assets[i].Name)
				if strings.Contains(name, "linux") && !strings.HasSuffix(assets[i].Name, ".exe") {
					return &assets[i]
				}
			}
		}
	}

	for i := range assets {
		if assets[i].Name == SourceArchiveName {
			return &assets[i]
		}
	}

	return nil
}
