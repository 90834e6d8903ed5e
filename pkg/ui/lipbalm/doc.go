/*
Package lipbalm expands XML-like style tags into styled terminal text.

Installer messages carry semantic tags such as <info> and <comment>. On a
color terminal each tag is rendered with the lipgloss style registered for
it; without color the tags are dropped and only the text remains.

	styles := lipbalm.StyleMap{"info": lipgloss.NewStyle().Foreground(lipgloss.Color("2"))}
	out, _ := lipbalm.ExpandTags(`<info>Creating the "app.ini" file</info>`, styles)

	plain := lipbalm.StripTags(`<info>Creating</info> the file`) // "Creating the file"

Unknown tags keep their content. The <no-format> tag only renders when the
terminal doesn't support color:

	<info>done</info><no-format> ✓</no-format>

Text that is not well-formed markup (a bare & or <) is returned unchanged;
use Escape for dynamic values such as file paths.
*/
package lipbalm
