package safearea

import (
	"strings"
	"testing"
)

const (
	hookImport    = "import { useSafeAreaInsets } from 'react-native-safe-area-context';"
	spacingImport = "import { spacing } from '../../constants/DesignSystem';"
	padObj        = "{ paddingBottom: bottomPad }"
)

// screenDoc is the minimal screen from the end-to-end scenario.
const screenDoc = "import { StyleSheet, View } from 'react-native';\n" +
	"\n" +
	"export default function Screen() { return (<View contentContainerStyle={styles.list} />); }\n"

// --- EnsureSafeAreaImport ---

func TestEnsureSafeAreaImport(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		changed bool
	}{
		{
			name:    "inserts after base import",
			input:   "import React from 'react';\nimport { View } from 'react-native';\nconst x = 1;\n",
			want:    "import React from 'react';\nimport { View } from 'react-native';\n" + hookImport + "\nconst x = 1;\n",
			changed: true,
		},
		{
			name:    "double quotes without semicolon",
			input:   "import { View } from \"react-native\"\nconst x = 1;\n",
			want:    "import { View } from \"react-native\"\n" + hookImport + "\nconst x = 1;\n",
			changed: true,
		},
		{
			name: "multi-line import anchors on closing line",
			input: "import {\n  View,\n  Text,\n} from 'react-native';\n" +
				"const x = 1;\n",
			want: "import {\n  View,\n  Text,\n} from 'react-native';\n" + hookImport + "\n" +
				"const x = 1;\n",
			changed: true,
		},
		{
			name:    "only first anchor is used",
			input:   "import { View } from 'react-native';\nimport { Text } from 'react-native';\n",
			want:    "import { View } from 'react-native';\n" + hookImport + "\nimport { Text } from 'react-native';\n",
			changed: true,
		},
		{
			name:    "CRLF line endings",
			input:   "import React from 'react';\r\nimport { View } from 'react-native';\r\nconst x = 1;\r\n",
			want:    "import React from 'react';\r\nimport { View } from 'react-native';\r\n" + hookImport + "\r\nconst x = 1;\r\n",
			changed: true,
		},
		{
			name:    "trailing line comment stays on anchor line",
			input:   "import { View } from 'react-native'; // eslint-disable-line\nconst x = 1;\n",
			want:    "import { View } from 'react-native'; // eslint-disable-line\n" + hookImport + "\nconst x = 1;\n",
			changed: true,
		},
		{
			name:    "trailing block comment with CRLF",
			input:   "import { View } from 'react-native'; /* ui */ \r\nconst x = 1;\r\n",
			want:    "import { View } from 'react-native'; /* ui */ \r\n" + hookImport + "\r\nconst x = 1;\r\n",
			changed: true,
		},
		{
			name:    "anchor on last line without newline",
			input:   "import { View } from 'react-native';",
			want:    "import { View } from 'react-native';\n" + hookImport,
			changed: true,
		},
		{
			name:  "code after import on same line is not an anchor",
			input: "import { View } from 'react-native'; const x = 1;\n",
			want:  "import { View } from 'react-native'; const x = 1;\n",
		},
		{
			name:  "already imported",
			input: "import { View } from 'react-native';\n" + hookImport + "\n",
			want:  "import { View } from 'react-native';\n" + hookImport + "\n",
		},
		{
			name:  "hook mentioned elsewhere",
			input: "import { View } from 'react-native';\n// uses useSafeAreaInsets\n",
			want:  "import { View } from 'react-native';\n// uses useSafeAreaInsets\n",
		},
		{
			name:  "no anchor",
			input: "import React from 'react';\n",
			want:  "import React from 'react';\n",
		},
		{
			name:  "similar module name is not an anchor",
			input: "import { Svg } from 'react-native-svg';\n",
			want:  "import { Svg } from 'react-native-svg';\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EnsureSafeAreaImport(tt.input)
			if got.Text != tt.want {
				t.Errorf("EnsureSafeAreaImport() =\n%q\nwant\n%q", got.Text, tt.want)
			}
			if got.Changed != tt.changed {
				t.Errorf("Changed = %v, want %v", got.Changed, tt.changed)
			}
			if got.Changed && strings.Count(got.Text, hookImport) != 1 {
				t.Errorf("expected exactly one hook import, got %d", strings.Count(got.Text, hookImport))
			}
		})
	}
}

// --- EnsureSpacingImport ---

func TestEnsureSpacingImport(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		changed bool
	}{
		{
			name:  "already imports spacing",
			input: "import { radius, spacing } from '../../constants/DesignSystem';\n",
			want:  "import { radius, spacing } from '../../constants/DesignSystem';\n",
		},
		{
			name:  "spacing in second design-system import",
			input: "import { radius } from '../../constants/DesignSystem';\nimport { spacing } from '../../constants/DesignSystem';\n",
			want:  "import { radius } from '../../constants/DesignSystem';\nimport { spacing } from '../../constants/DesignSystem';\n",
		},
		{
			name:    "adds symbol to existing list",
			input:   "import { radius, typography } from '../../constants/DesignSystem';\n",
			want:    "import { radius, typography, spacing } from '../../constants/DesignSystem';\n",
			changed: true,
		},
		{
			name:    "compact list",
			input:   "import {radius} from \"../../constants/DesignSystem\";\n",
			want:    "import {radius, spacing} from \"../../constants/DesignSystem\";\n",
			changed: true,
		},
		{
			name:    "multi-line list with trailing comma",
			input:   "import {\n  radius,\n  typography,\n} from '../../constants/DesignSystem';\n",
			want:    "import {\n  radius,\n  typography, spacing,\n} from '../../constants/DesignSystem';\n",
			changed: true,
		},
		{
			name:    "similar symbol name is not spacing",
			input:   "import { spacingScale } from '../../constants/DesignSystem';\n",
			want:    "import { spacingScale, spacing } from '../../constants/DesignSystem';\n",
			changed: true,
		},
		{
			name:    "falls back to Colors anchor",
			input:   "import { Colors } from '../../constants/Colors';\nconst x = 1;\n",
			want:    "import { Colors } from '../../constants/Colors';\n" + spacingImport + "\nconst x = 1;\n",
			changed: true,
		},
		{
			name:    "Colors anchor with CRLF line endings",
			input:   "import { Colors } from '../../constants/Colors';\r\nconst x = 1;\r\n",
			want:    "import { Colors } from '../../constants/Colors';\r\n" + spacingImport + "\r\nconst x = 1;\r\n",
			changed: true,
		},
		{
			name:    "Colors anchor with trailing comment",
			input:   "import { Colors } from '../../constants/Colors'; // theme\n",
			want:    "import { Colors } from '../../constants/Colors'; // theme\n" + spacingImport + "\n",
			changed: true,
		},
		{
			name:    "CRLF design-system list",
			input:   "import {\r\n  radius,\r\n} from '../../constants/DesignSystem';\r\n",
			want:    "import {\r\n  radius, spacing,\r\n} from '../../constants/DesignSystem';\r\n",
			changed: true,
		},
		{
			name:  "no design system and no Colors",
			input: "import { View } from 'react-native';\n",
			want:  "import { View } from 'react-native';\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EnsureSpacingImport(tt.input)
			if got.Text != tt.want {
				t.Errorf("EnsureSpacingImport() =\n%q\nwant\n%q", got.Text, tt.want)
			}
			if got.Changed != tt.changed {
				t.Errorf("Changed = %v, want %v", got.Changed, tt.changed)
			}
		})
	}
}

func TestEnsureSpacingImport_DesignSystemWinsOverColors(t *testing.T) {
	input := "import { Colors } from '../../constants/Colors';\n" +
		"import { radius } from '../../constants/DesignSystem';\n"

	got := EnsureSpacingImport(input)
	want := "import { Colors } from '../../constants/Colors';\n" +
		"import { radius, spacing } from '../../constants/DesignSystem';\n"
	if got.Text != want {
		t.Errorf("got\n%q\nwant\n%q", got.Text, want)
	}
	if strings.Contains(got.Text, spacingImport) {
		t.Error("should not add a separate spacing import when a design-system import exists")
	}
}

func TestEnsureSpacingImport_Idempotent(t *testing.T) {
	inputs := []string{
		"import { radius } from '../../constants/DesignSystem';\n",
		"import { Colors } from '../../constants/Colors';\n",
	}
	for _, in := range inputs {
		once := EnsureSpacingImport(in)
		twice := EnsureSpacingImport(once.Text)
		if twice.Changed {
			t.Errorf("second application changed %q", once.Text)
		}
	}
}

func TestAppendSymbol_PreservesOrder(t *testing.T) {
	got := appendSymbol(" Colors, radius as r, typography ", "spacing")
	want := " Colors, radius as r, typography, spacing "
	if got != want {
		t.Errorf("appendSymbol() = %q, want %q", got, want)
	}
	if appendSymbol("", "spacing") != " spacing " {
		t.Errorf("empty list: got %q", appendSymbol("", "spacing"))
	}
}

func TestListsSymbol(t *testing.T) {
	tests := []struct {
		list string
		want bool
	}{
		{" spacing ", true},
		{" radius, spacing as sp ", true},
		{" type spacing ", true},
		{" spacingScale ", false},
		{" radius ", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := listsSymbol(tt.list, "spacing"); got != tt.want {
			t.Errorf("listsSymbol(%q) = %v, want %v", tt.list, got, tt.want)
		}
	}
}

// --- EnsureBottomPadVars ---

func TestEnsureBottomPadVars(t *testing.T) {
	vars := "\n  const insets = useSafeAreaInsets();\n  const bottomPad = insets.bottom + spacing.lg;\n"

	tests := []struct {
		name    string
		input   string
		want    string
		changed bool
	}{
		{
			name:    "injects after opening brace",
			input:   "export default function Home() {\n  return null;\n}\n",
			want:    "export default function Home() {" + vars + "\n  return null;\n}\n",
			changed: true,
		},
		{
			name:    "typed props and return type",
			input:   "export default function Home({ id }: Props): JSX.Element {\n  return null;\n}\n",
			want:    "export default function Home({ id }: Props): JSX.Element {" + vars + "\n  return null;\n}\n",
			changed: true,
		},
		{
			name:  "variable already present",
			input: "export default function Home() {\n  const bottomPad = 8;\n}\n",
			want:  "export default function Home() {\n  const bottomPad = 8;\n}\n",
		},
		{
			name:  "name used elsewhere suppresses injection",
			input: "// bottomPad handled by layout\nexport default function Home() {\n}\n",
			want:  "// bottomPad handled by layout\nexport default function Home() {\n}\n",
		},
		{
			name:  "no default export function",
			input: "const Home = () => {\n  return null;\n};\nexport default Home;\n",
			want:  "const Home = () => {\n  return null;\n};\nexport default Home;\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EnsureBottomPadVars(tt.input)
			if got.Text != tt.want {
				t.Errorf("EnsureBottomPadVars() =\n%q\nwant\n%q", got.Text, tt.want)
			}
			if got.Changed != tt.changed {
				t.Errorf("Changed = %v, want %v", got.Changed, tt.changed)
			}
		})
	}
}

func TestEnsureBottomPadVars_Idempotent(t *testing.T) {
	inputs := []string{
		screenDoc,
		"export default function A() {}\nexport default function B() {}\n",
		"no function here",
		"",
	}
	for _, in := range inputs {
		once := EnsureBottomPadVars(in)
		twice := EnsureBottomPadVars(once.Text)
		if twice.Text != once.Text {
			t.Errorf("not idempotent for %q:\nonce  %q\ntwice %q", in, once.Text, twice.Text)
		}
		if strings.Count(once.Text, "const bottomPad") > 1 {
			t.Errorf("injected more than once into %q", in)
		}
	}
}

// --- FoldPaddingIntoStyle ---

func TestFoldPaddingIntoStyle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		edits int
	}{
		{
			name:  "bare style reference",
			input: `<ScrollView contentContainerStyle={styles.list}>`,
			want:  `<ScrollView contentContainerStyle={[styles.list, ` + padObj + `]}>`,
			edits: 1,
		},
		{
			name:  "bare identifier",
			input: `<FlatList contentContainerStyle={containerStyle} />`,
			want:  `<FlatList contentContainerStyle={[containerStyle, ` + padObj + `]} />`,
			edits: 1,
		},
		{
			name:  "existing list",
			input: `<ScrollView contentContainerStyle={[styles.list, { gap: 8 }]}>`,
			want:  `<ScrollView contentContainerStyle={[styles.list, { gap: 8 }, ` + padObj + `]}>`,
			edits: 1,
		},
		{
			name:  "several attributes",
			input: "<A contentContainerStyle={styles.a} />\n<B contentContainerStyle={[styles.b]} />",
			want:  "<A contentContainerStyle={[styles.a, " + padObj + "]} />\n<B contentContainerStyle={[styles.b, " + padObj + "]} />",
			edits: 2,
		},
		{
			name:  "inline object is left alone",
			input: `<ScrollView contentContainerStyle={{ padding: 4 }}>`,
			want:  `<ScrollView contentContainerStyle={{ padding: 4 }}>`,
		},
		{
			name:  "no attribute is never synthesized",
			input: `<FlatList data={items} style={styles.list} />`,
			want:  `<FlatList data={items} style={styles.list} />`,
		},
		{
			name:  "multi-line list is not matched",
			input: "<ScrollView contentContainerStyle={[\n  styles.list,\n]}>",
			want:  "<ScrollView contentContainerStyle={[\n  styles.list,\n]}>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FoldPaddingIntoStyle(tt.input)
			if got.Text != tt.want {
				t.Errorf("FoldPaddingIntoStyle() =\n%q\nwant\n%q", got.Text, tt.want)
			}
			if got.Edits != tt.edits {
				t.Errorf("Edits = %d, want %d", got.Edits, tt.edits)
			}
			if got.Changed != (tt.edits > 0) {
				t.Errorf("Changed = %v, want %v", got.Changed, tt.edits > 0)
			}
		})
	}
}

func TestFoldPaddingIntoStyle_AppendsAgainOnSecondRun(t *testing.T) {
	once := FoldPaddingIntoStyle(`contentContainerStyle={styles.list}`)
	twice := FoldPaddingIntoStyle(once.Text)

	want := `contentContainerStyle={[styles.list, ` + padObj + `, ` + padObj + `]}`
	if twice.Text != want {
		t.Errorf("second run =\n%q\nwant\n%q", twice.Text, want)
	}
}

// --- CollapseDuplicatePadding ---

func TestCollapseDuplicatePadding(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		removed int
	}{
		{
			name:    "two copies",
			input:   `contentContainerStyle={[styles.list, ` + padObj + `, ` + padObj + `]}`,
			want:    `contentContainerStyle={[styles.list, ` + padObj + `]}`,
			removed: 1,
		},
		{
			name:    "three copies",
			input:   `contentContainerStyle={[styles.list, ` + padObj + `, ` + padObj + `, ` + padObj + `]}`,
			want:    `contentContainerStyle={[styles.list, ` + padObj + `]}`,
			removed: 2,
		},
		{
			name:    "copies separated by other entries",
			input:   `contentContainerStyle={[` + padObj + `, styles.a, ` + padObj + `]}`,
			want:    `contentContainerStyle={[styles.a, ` + padObj + `]}`,
			removed: 1,
		},
		{
			name:    "irregular spacing",
			input:   `contentContainerStyle={[styles.list,{paddingBottom:bottomPad},{ paddingBottom : bottomPad }]}`,
			want:    `contentContainerStyle={[styles.list,{ paddingBottom : bottomPad }]}`,
			removed: 1,
		},
		{
			name: "multi-line list",
			input: "contentContainerStyle={[\n" +
				"  styles.list,\n" +
				"  " + padObj + ",\n" +
				"  " + padObj + ",\n" +
				"]}",
			want: "contentContainerStyle={[\n" +
				"  styles.list,\n" +
				"  " + padObj + ",\n" +
				"]}",
			removed: 1,
		},
		{
			name:  "single copy",
			input: `contentContainerStyle={[styles.list, ` + padObj + `]}`,
			want:  `contentContainerStyle={[styles.list, ` + padObj + `]}`,
		},
		{
			name:  "no copy",
			input: `contentContainerStyle={[styles.list]}`,
			want:  `contentContainerStyle={[styles.list]}`,
		},
		{
			name:  "copies outside a style list",
			input: `const a = [` + padObj + `, ` + padObj + `];`,
			want:  `const a = [` + padObj + `, ` + padObj + `];`,
		},
		{
			name: "each list collapsed independently",
			input: "<A contentContainerStyle={[styles.a, " + padObj + ", " + padObj + "]} />\n" +
				"<B contentContainerStyle={[styles.b, " + padObj + "]} />",
			want: "<A contentContainerStyle={[styles.a, " + padObj + "]} />\n" +
				"<B contentContainerStyle={[styles.b, " + padObj + "]} />",
			removed: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CollapseDuplicatePadding(tt.input)
			if got.Text != tt.want {
				t.Errorf("CollapseDuplicatePadding() =\n%q\nwant\n%q", got.Text, tt.want)
			}
			if got.Edits != tt.removed {
				t.Errorf("Edits = %d, want %d", got.Edits, tt.removed)
			}
			if strings.Contains(got.Text, ",,") || strings.Contains(got.Text, ", ,") || strings.Contains(got.Text, ", ]") {
				t.Errorf("dangling comma in %q", got.Text)
			}
		})
	}
}

func TestCollapseDuplicatePadding_FixedPointAfterOneApplication(t *testing.T) {
	inputs := []string{
		`contentContainerStyle={[styles.list, ` + padObj + `, ` + padObj + `, ` + padObj + `]}`,
		`contentContainerStyle={[` + padObj + `, ` + padObj + `]}`,
		`contentContainerStyle={[styles.list]}`,
		screenDoc,
	}
	for _, in := range inputs {
		once := CollapseDuplicatePadding(in)
		twice := CollapseDuplicatePadding(once.Text)
		if twice.Changed || twice.Text != once.Text {
			t.Errorf("not a fixed point after one application: %q -> %q", once.Text, twice.Text)
		}
	}
}

// --- Pipelines ---

func TestPatcher_Scenario(t *testing.T) {
	patcher, err := NewPatcher(DefaultProfile())
	if err != nil {
		t.Fatalf("NewPatcher() error = %v", err)
	}

	got := patcher.Apply(screenDoc)

	want := "import { StyleSheet, View } from 'react-native';\n" +
		hookImport + "\n" +
		"\n" +
		"export default function Screen() {\n" +
		"  const insets = useSafeAreaInsets();\n" +
		"  const bottomPad = insets.bottom + spacing.lg;\n" +
		" return (<View contentContainerStyle={[styles.list, " + padObj + "]} />); }\n"
	if got.Text != want {
		t.Errorf("patched document =\n%s\nwant\n%s", got.Text, want)
	}

	wantSteps := []string{StepSafeAreaImport, StepBottomPadVars, StepFoldPadding}
	if strings.Join(got.Steps, ",") != strings.Join(wantSteps, ",") {
		t.Errorf("Steps = %v, want %v", got.Steps, wantSteps)
	}
}

func TestPatcher_ScenarioCRLF(t *testing.T) {
	patcher, err := NewPatcher(DefaultProfile())
	if err != nil {
		t.Fatalf("NewPatcher() error = %v", err)
	}

	crlf := func(s string) string { return strings.ReplaceAll(s, "\n", "\r\n") }

	got := patcher.Apply(crlf(screenDoc))
	want := patcher.Apply(screenDoc)
	if got.Text != crlf(want.Text) {
		t.Errorf("patched document =\n%q\nwant\n%q", got.Text, crlf(want.Text))
	}
	if strings.Join(got.Steps, ",") != strings.Join(want.Steps, ",") {
		t.Errorf("Steps = %v, want %v", got.Steps, want.Steps)
	}
	if strings.Count(got.Text, "\n") != strings.Count(got.Text, "\r\n") {
		t.Error("every inserted line should end in CRLF")
	}
}

func TestPatcher_HookCallAlwaysImported(t *testing.T) {
	patcher, err := NewPatcher(DefaultProfile())
	if err != nil {
		t.Fatalf("NewPatcher() error = %v", err)
	}

	inputs := map[string]string{
		"LF":               screenDoc,
		"CRLF":             strings.ReplaceAll(screenDoc, "\n", "\r\n"),
		"trailing comment": strings.Replace(screenDoc, "'react-native';", "'react-native'; // eslint-disable-line", 1),
	}
	for name, in := range inputs {
		t.Run(name, func(t *testing.T) {
			got := patcher.Apply(in).Text
			if strings.Contains(got, "useSafeAreaInsets()") && !strings.Contains(got, hookImport) {
				t.Errorf("hook is called but not imported:\n%q", got)
			}
		})
	}
}

func TestPatcher_TwiceThenClean(t *testing.T) {
	patcher, err := NewPatcher(DefaultProfile())
	if err != nil {
		t.Fatalf("NewPatcher() error = %v", err)
	}
	cleaner, err := NewCleaner(DefaultProfile())
	if err != nil {
		t.Fatalf("NewCleaner() error = %v", err)
	}

	first := patcher.Apply(screenDoc)
	second := patcher.Apply(first.Text)

	if got := strings.Count(second.Text, padObj); got != 2 {
		t.Fatalf("expected 2 padding objects after second patch run, got %d", got)
	}
	if strings.Join(second.Steps, ",") != StepFoldPadding {
		t.Errorf("second run Steps = %v, want only %s", second.Steps, StepFoldPadding)
	}

	cleaned := cleaner.Apply(second.Text)
	if !cleaned.Changed {
		t.Fatal("expected cleaner to change the document")
	}
	if cleaned.Text != first.Text {
		t.Errorf("cleaned document =\n%s\nwant\n%s", cleaned.Text, first.Text)
	}
}

func TestPatcher_SpacingFromColorsAnchor(t *testing.T) {
	input := "import { View } from 'react-native';\n" +
		"import { Colors } from '../../constants/Colors';\n" +
		"\n" +
		"export default function Screen() {\n" +
		"  return <View />;\n" +
		"}\n"

	patcher, err := NewPatcher(DefaultProfile())
	if err != nil {
		t.Fatalf("NewPatcher() error = %v", err)
	}
	got := patcher.Apply(input)

	for _, want := range []string{hookImport, spacingImport, "const bottomPad = insets.bottom + spacing.lg;"} {
		if strings.Count(got.Text, want) != 1 {
			t.Errorf("expected exactly one %q in\n%s", want, got.Text)
		}
	}
	if strings.Contains(got.Text, padObj) {
		t.Error("no content style attribute should mean no padding object")
	}
}

func TestSteps(t *testing.T) {
	steps := Steps()
	if len(steps) != 5 {
		t.Fatalf("expected 5 steps, got %d", len(steps))
	}

	patcher := defaultRules.Patcher()
	for i, tr := range patcher.Transforms() {
		if steps[i].Pipeline != "patch" || steps[i].Name != tr.Name() {
			t.Errorf("step %d = %+v, want patch/%s", i, steps[i], tr.Name())
		}
	}
	if steps[4].Name != defaultRules.Cleaner().Transforms()[0].Name() {
		t.Errorf("clean step = %q", steps[4].Name)
	}
}
