/*
Copyright © 2024 Ryan Painter paintersrp@gmail.com

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"

	"github.com/Paintersrp/rnote/internal/state"
	"github.com/Paintersrp/rnote/pkg/cmd/root"
)

// Execute builds the state from the config file and environment, then runs
// the command line. The returned error has not been printed.
func Execute(ctx context.Context) error {
	s, err := state.NewState("")
	if err != nil {
		return err
	}

	rootCmd, err := root.NewCmdRoot(s)
	if err != nil {
		return err
	}

	return rootCmd.ExecuteContext(ctx)
}
