// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package commands

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/walteh/wordswap/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

type statusFunc func(r operation.FileResult) string

func patchStatus(r operation.FileResult) string {
	switch {
	case r.Written && r.Modified:
		return "patched"
	case r.Written:
		return "copied"
	default:
		return "unchanged"
	}
}

func checkStatus(r operation.FileResult) string {
	if r.Modified {
		return "would change"
	}
	return "unchanged"
}

// 📊 renderSummary draws one row per file plus a totals row
func renderSummary(results []operation.FileResult, status statusFunc) (string, error) {
	data := pterm.TableData{{"File", "Encoding", "Replacements", "Status"}}
	for _, r := range results {
		data = append(data, []string{
			r.Path,
			r.Encoding.String(),
			strconv.FormatUint(r.Replacements, 10),
			status(r),
		})
	}

	s := operation.Summarize(results)
	data = append(data, []string{
		fmt.Sprintf("%d files", s.Files),
		"",
		strconv.FormatUint(s.Replacements, 10),
		fmt.Sprintf("%d modified", s.Modified),
	})

	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return "", errors.Errorf("rendering summary: %w", err)
	}
	return out, nil
}
