package main

import (
	"fmt"
	"os"
	"strings"
)

func generateConstructor(kind string, n int) string {
	var sb strings.Builder

	recv := "m"
	cellType := "MemoCell"
	if kind == "Path" {
		recv = "p"
		cellType = "PassCell"
	}

	typeParams := []string{"T any"}
	for i := 1; i <= n; i++ {
		typeParams = append(typeParams, fmt.Sprintf("D%d any", i))
	}

	fnParams := []string{}
	for i := 1; i <= n; i++ {
		fnParams = append(fnParams, fmt.Sprintf("D%d", i))
	}

	args := []string{}
	for i := 1; i <= n; i++ {
		args = append(args, fmt.Sprintf("v%d", i))
	}

	sb.WriteString(fmt.Sprintf("func %s%d[%s](\n", kind, n, strings.Join(typeParams, ", ")))
	for i := 1; i <= n; i++ {
		sb.WriteString(fmt.Sprintf("\td%d Upstream[D%d],\n", i, i))
	}
	sb.WriteString(fmt.Sprintf("\tfn func(%s) (T, error),\n", strings.Join(fnParams, ", ")))
	sb.WriteString("\topts ...CellOption,\n")
	sb.WriteString(fmt.Sprintf(") *%s[T] {\n", cellType))
	sb.WriteString(fmt.Sprintf("\t%s := &%s[T]{tagSet: newTagSet()}\n", recv, cellType))
	sb.WriteString(fmt.Sprintf("\t%s.c = newCore(%s)\n", recv, recv))
	sb.WriteString(fmt.Sprintf("\t%s.compute = func() (T, error) {\n", recv))
	for i := 1; i <= n; i++ {
		sb.WriteString(fmt.Sprintf("\t\tv%d, err := d%d.Get()\n", i, i))
		sb.WriteString("\t\tif err != nil {\n")
		sb.WriteString("\t\t\tvar zero T\n")
		sb.WriteString("\t\t\treturn zero, err\n")
		sb.WriteString("\t\t}\n")
	}
	sb.WriteString(fmt.Sprintf("\t\treturn fn(%s)\n", strings.Join(args, ", ")))
	sb.WriteString("\t}\n")
	sb.WriteString("\tcfg := newCellConfig(opts)\n")
	sb.WriteString(fmt.Sprintf("\tcfg.applyTags(%s)\n", recv))
	if kind == "Node" {
		sb.WriteString("\tm.graph = cfg.graph\n")
	}
	sb.WriteString(fmt.Sprintf("\tw := weak.Make(%s.c)\n", recv))
	for i := 1; i <= n; i++ {
		sb.WriteString(fmt.Sprintf("\td%d.core().attach(w)\n", i))
	}
	if kind == "Node" {
		sb.WriteString("\tm.graph.add(m)\n")
	}
	sb.WriteString(fmt.Sprintf("\treturn %s\n", recv))
	sb.WriteString("}\n\n")

	return sb.String()
}

func main() {
	var output strings.Builder

	for i := 1; i <= 5; i++ {
		output.WriteString(generateConstructor("Node", i))
	}
	for i := 1; i <= 5; i++ {
		output.WriteString(generateConstructor("Path", i))
	}

	fmt.Print(output.String())

	if len(os.Args) > 1 && os.Args[1] == "-w" {
		file, err := os.OpenFile("../wire_generated.go", os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			panic(err)
		}
		defer file.Close()

		file.WriteString("package lazy\n\n")
		file.WriteString("//go:generate go run codegen/main.go -w\n\n")
		file.WriteString("import \"weak\"\n\n")
		file.WriteString(output.String())
		fmt.Println("Generated wire_generated.go")
	}
}
