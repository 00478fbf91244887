package main

import (
	"fmt"
	"io"
	"strings"
)

// flagWords returns all long and short flag spellings for a word list.
func flagWords(flags []flagDef) string {
	var words []string
	for _, f := range flags {
		words = append(words, "--"+f.Long)
		if f.Short != "" {
			words = append(words, "-"+f.Short)
		}
	}
	return strings.Join(words, " ")
}

// extAlternatives converts "*.md,*.markdown" to "md|markdown" for use in
// bash extglob and zsh glob patterns.
func extAlternatives(glob string) string {
	var exts []string
	for _, part := range strings.Split(glob, ",") {
		exts = append(exts, strings.TrimPrefix(strings.TrimSpace(part), "*."))
	}
	return strings.Join(exts, "|")
}

// commandNames returns the space-joined names of all commands.
func commandNames(commands []commandDef) string {
	var names []string
	for _, c := range commands {
		names = append(names, c.Name)
	}
	return strings.Join(names, " ")
}

// generateBash writes a bash completion script.
func generateBash(w io.Writer) error {
	commands := getCommands()
	var b strings.Builder

	b.WriteString("# bash completion for md2html\n")
	b.WriteString("_md2html() {\n")
	b.WriteString("    local cur prev\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n\n")
	fmt.Fprintf(&b, "    local commands=\"%s\"\n\n", commandNames(commands))
	b.WriteString("    if [ \"$COMP_CWORD\" -eq 1 ]; then\n")
	b.WriteString("        COMPREPLY=( $(compgen -W \"$commands\" -- \"$cur\") )\n")
	b.WriteString("        return 0\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    case \"${COMP_WORDS[1]}\" in\n")

	for _, cmd := range commands {
		switch cmd.Name {
		case "completion":
			b.WriteString("    completion)\n")
			b.WriteString("        COMPREPLY=( $(compgen -W \"bash zsh fish powershell\" -- \"$cur\") )\n")
			b.WriteString("        return 0\n")
			b.WriteString("        ;;\n")
			continue
		case "help":
			b.WriteString("    help)\n")
			b.WriteString("        COMPREPLY=( $(compgen -W \"$commands\" -- \"$cur\") )\n")
			b.WriteString("        return 0\n")
			b.WriteString("        ;;\n")
			continue
		}
		if len(cmd.Flags) == 0 {
			continue
		}

		fmt.Fprintf(&b, "    %s)\n", cmd.Name)
		b.WriteString("        case \"$prev\" in\n")
		for _, f := range cmd.Flags {
			spellings := "--" + f.Long
			if f.Short != "" {
				spellings += "|-" + f.Short
			}
			switch f.Type {
			case flagEnum:
				fmt.Fprintf(&b, "        %s)\n", spellings)
				fmt.Fprintf(&b, "            COMPREPLY=( $(compgen -W \"%s\" -- \"$cur\") )\n", strings.Join(f.Values, " "))
				b.WriteString("            return 0\n")
				b.WriteString("            ;;\n")
			case flagFile:
				fmt.Fprintf(&b, "        %s)\n", spellings)
				fmt.Fprintf(&b, "            COMPREPLY=( $(compgen -f -X '!*.@(%s)' -- \"$cur\") )\n", extAlternatives(f.FileGlob))
				b.WriteString("            return 0\n")
				b.WriteString("            ;;\n")
			case flagDir:
				fmt.Fprintf(&b, "        %s)\n", spellings)
				b.WriteString("            COMPREPLY=( $(compgen -d -- \"$cur\") )\n")
				b.WriteString("            return 0\n")
				b.WriteString("            ;;\n")
			}
		}
		b.WriteString("        esac\n")
		b.WriteString("        if [[ \"$cur\" == -* ]]; then\n")
		fmt.Fprintf(&b, "            COMPREPLY=( $(compgen -W \"%s\" -- \"$cur\") )\n", flagWords(cmd.Flags))
		if cmd.TakesFiles {
			b.WriteString("        else\n")
			fmt.Fprintf(&b, "            COMPREPLY=( $(compgen -f -X '!*.@(%s)' -- \"$cur\") $(compgen -d -- \"$cur\") )\n", extAlternatives(cmd.FilePattern))
		}
		b.WriteString("        fi\n")
		b.WriteString("        return 0\n")
		b.WriteString("        ;;\n")
	}

	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("complete -F _md2html md2html\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// zshSanitize strips characters that would break an _arguments spec.
func zshSanitize(s string) string {
	s = strings.ReplaceAll(s, "[", "(")
	s = strings.ReplaceAll(s, "]", ")")
	s = strings.ReplaceAll(s, "'", "")
	return s
}

// generateZsh writes a zsh completion script.
func generateZsh(w io.Writer) error {
	commands := getCommands()
	var b strings.Builder

	b.WriteString("#compdef md2html\n")
	b.WriteString("# zsh completion for md2html\n\n")
	b.WriteString("_md2html() {\n")
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, cmd := range commands {
		fmt.Fprintf(&b, "        '%s:%s'\n", cmd.Name, zshSanitize(cmd.Desc))
	}
	b.WriteString("    )\n\n")
	b.WriteString("    if (( CURRENT == 2 )); then\n")
	b.WriteString("        _describe 'command' commands\n")
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    case \"${words[2]}\" in\n")

	for _, cmd := range commands {
		switch cmd.Name {
		case "completion":
			b.WriteString("    completion)\n")
			b.WriteString("        _values 'shell' bash zsh fish powershell\n")
			b.WriteString("        ;;\n")
			continue
		case "help":
			b.WriteString("    help)\n")
			fmt.Fprintf(&b, "        _values 'command' %s\n", commandNames(commands))
			b.WriteString("        ;;\n")
			continue
		}
		if len(cmd.Flags) == 0 {
			continue
		}

		fmt.Fprintf(&b, "    %s)\n", cmd.Name)
		b.WriteString("        _arguments \\\n")
		for _, f := range cmd.Flags {
			desc := zshSanitize(f.Desc)
			var action string
			switch f.Type {
			case flagBool:
				fmt.Fprintf(&b, "            '--%s[%s]' \\\n", f.Long, desc)
				continue
			case flagEnum:
				action = fmt.Sprintf("%s:(%s)", f.Long, strings.Join(f.Values, " "))
			case flagFile:
				action = fmt.Sprintf("file:_files -g \"*.(%s)\"", extAlternatives(f.FileGlob))
			case flagDir:
				action = "path:_files -/"
			default:
				action = f.Long + ":"
			}
			fmt.Fprintf(&b, "            '--%s[%s]:%s' \\\n", f.Long, desc, action)
		}
		if cmd.TakesFiles {
			fmt.Fprintf(&b, "            '*:markdown file:_files -g \"*.(%s)\"'\n", extAlternatives(cmd.FilePattern))
		} else {
			b.WriteString("            '*:'\n")
		}
		b.WriteString("        ;;\n")
	}

	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("if type compdef >/dev/null 2>&1; then\n")
	b.WriteString("    compdef _md2html md2html\n")
	b.WriteString("fi\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// generateFish writes a fish completion script.
func generateFish(w io.Writer) error {
	commands := getCommands()
	var b strings.Builder

	b.WriteString("# fish completion for md2html\n")
	b.WriteString("complete -c md2html -f\n\n")

	for _, cmd := range commands {
		fmt.Fprintf(&b, "complete -c md2html -n __fish_use_subcommand -a %s -d '%s'\n",
			cmd.Name, strings.ReplaceAll(cmd.Desc, "'", ""))
	}
	b.WriteString("\n")

	for _, cmd := range commands {
		cond := fmt.Sprintf("__fish_seen_subcommand_from %s", cmd.Name)

		switch cmd.Name {
		case "completion":
			fmt.Fprintf(&b, "complete -c md2html -n '%s' -x -a 'bash zsh fish powershell'\n", cond)
			continue
		case "help":
			fmt.Fprintf(&b, "complete -c md2html -n '%s' -x -a '%s'\n", cond, commandNames(commands))
			continue
		}

		for _, f := range cmd.Flags {
			fmt.Fprintf(&b, "complete -c md2html -n '%s' -l %s", cond, f.Long)
			if f.Short != "" {
				fmt.Fprintf(&b, " -s %s", f.Short)
			}
			switch f.Type {
			case flagBool:
				// no argument
			case flagEnum:
				fmt.Fprintf(&b, " -x -a '%s'", strings.Join(f.Values, " "))
			case flagFile:
				b.WriteString(" -r -F")
			case flagDir:
				b.WriteString(" -r -a '(__fish_complete_directories)'")
			default:
				b.WriteString(" -r")
			}
			fmt.Fprintf(&b, " -d '%s'\n", strings.ReplaceAll(f.Desc, "'", ""))
		}
		if cmd.TakesFiles {
			var suffixes []string
			for _, part := range strings.Split(cmd.FilePattern, ",") {
				suffixes = append(suffixes, strings.TrimPrefix(strings.TrimSpace(part), "*"))
			}
			fmt.Fprintf(&b, "complete -c md2html -n '%s' -k -a '(__fish_complete_suffix %s)'\n",
				cond, strings.Join(suffixes, " "))
		}
		if len(cmd.Flags) > 0 || cmd.TakesFiles {
			b.WriteString("\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// generatePowerShell writes a PowerShell completion script.
func generatePowerShell(w io.Writer) error {
	commands := getCommands()
	var b strings.Builder

	b.WriteString("# PowerShell completion for md2html\n")
	b.WriteString("Register-ArgumentCompleter -Native -CommandName md2html -ScriptBlock {\n")
	b.WriteString("    param($wordToComplete, $commandAst, $cursorPosition)\n\n")
	b.WriteString("    $commands = [ordered]@{\n")
	for _, cmd := range commands {
		fmt.Fprintf(&b, "        '%s' = '%s'\n", cmd.Name, strings.ReplaceAll(cmd.Desc, "'", "''"))
	}
	b.WriteString("    }\n\n")
	b.WriteString("    $flags = @{\n")
	for _, cmd := range commands {
		if len(cmd.Flags) == 0 {
			continue
		}
		fmt.Fprintf(&b, "        '%s' = @('%s')\n", cmd.Name, strings.Join(strings.Split(flagWords(cmd.Flags), " "), "', '"))
	}
	b.WriteString("    }\n\n")
	b.WriteString("    $elements = $commandAst.CommandElements\n")
	b.WriteString("    if ($elements.Count -le 2) {\n")
	b.WriteString("        $commands.GetEnumerator() | Where-Object { $_.Key -like \"$wordToComplete*\" } | ForEach-Object {\n")
	b.WriteString("            [System.Management.Automation.CompletionResult]::new($_.Key, $_.Key, 'ParameterValue', $_.Value)\n")
	b.WriteString("        }\n")
	b.WriteString("        return\n")
	b.WriteString("    }\n\n")
	b.WriteString("    $cmd = $elements[1].Value\n")
	b.WriteString("    if ($cmd -eq 'completion') {\n")
	b.WriteString("        'bash', 'zsh', 'fish', 'powershell' | Where-Object { $_ -like \"$wordToComplete*\" } | ForEach-Object {\n")
	b.WriteString("            [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)\n")
	b.WriteString("        }\n")
	b.WriteString("        return\n")
	b.WriteString("    }\n")
	b.WriteString("    if ($flags.ContainsKey($cmd)) {\n")
	b.WriteString("        $flags[$cmd] | Where-Object { $_ -like \"$wordToComplete*\" } | ForEach-Object {\n")
	b.WriteString("            [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterName', $_)\n")
	b.WriteString("        }\n")
	b.WriteString("    }\n")
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}
