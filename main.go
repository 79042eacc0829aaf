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
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Paintersrp/rnote/cmd"
	"github.com/Paintersrp/rnote/internal/config"
	"github.com/Paintersrp/rnote/internal/remote"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)

		var initErr *config.ConfigInitError
		switch {
		case errors.Is(err, remote.ErrUnauthorized):
			fmt.Fprintln(os.Stderr, "Your session was rejected. Run `rnote auth login` to sign in again.")
		case errors.As(err, &initErr):
			fmt.Fprintln(os.Stderr, "Check ~/.rnote/cfg.yaml or run `rnote profile add`.")
		}

		stop()
		os.Exit(1)
	}
}
