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

package text_test

import (
	"fmt"

	"github.com/walteh/wordswap/pkg/text"
)

func ExampleReplaceASCII() {
	dict, err := text.NewDictionary(map[string]string{
		"first":   "changed",
		"another": "something",
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	count, out := text.ReplaceASCII(dict, []byte("First and ANOTHER."))
	fmt.Printf("Modified: %s\n", out)
	fmt.Printf("Changes: %d\n", count)

	// Output:
	// Modified: Changed and SOMETHING.
	// Changes: 2
}

func ExampleReplaceUTF16LE() {
	dict, _ := text.NewDictionary(map[string]string{"small": "this is bigger than the original"})

	count, out := text.ReplaceUTF16LE(dict, text.EncodeUTF16LE("Small"))
	fmt.Printf("Modified: %s\n", text.DecodeUTF16LE(out))
	fmt.Printf("Changes: %d\n", count)

	// Output:
	// Modified: This is bigger than the original
	// Changes: 1
}

func ExampleReplaceText() {
	dict, _ := text.NewDictionary(map[string]string{"hello": "hi"})

	count, out := text.ReplaceText(dict, "HELLO мир, hello_world")
	fmt.Println(out, count)

	// Output:
	// HI мир, hello_world 1
}
