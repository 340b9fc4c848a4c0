package emit

import (
	"fmt"
	"strings"

	"github.com/lugondev/solores-go/internal/model"
	"github.com/lugondev/solores-go/internal/rustgen"
	"github.com/lugondev/solores-go/internal/util"
)

// Errors renders src/errors.rs: one thiserror-derived enum covering every
// custom program error, with explicit discriminants equal to the IDL error
// codes, plus the conversion into ProgramError, DecodeError, and PrintProgramError
// glue on-chain callers expect around a custom error enum.
func Errors(errs []model.ErrorDef, programName string) string {
	if len(errs) == 0 {
		return ""
	}
	enumName := util.ToPascalCase(programName) + "Error"

	f := rustgen.NewFile()
	f.Use("solana_program::decode_error::DecodeError")
	f.Use("solana_program::msg")
	f.Use("solana_program::program_error::{PrintProgramError, ProgramError}")
	f.Use("thiserror::Error")

	var b strings.Builder
	b.WriteString("#[derive(Clone, Copy, Debug, Eq, Error, num_derive::FromPrimitive, PartialEq)]\n")
	fmt.Fprintf(&b, "pub enum %s {\n", enumName)
	for _, e := range errs {
		fmt.Fprintf(&b, "    #[error(%q)]\n", e.Msg)
		fmt.Fprintf(&b, "    %s = %d,\n", util.ToPascalCase(e.Name), e.Code)
	}
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, "impl From<%s> for ProgramError {\n", enumName)
	fmt.Fprintf(&b, "    fn from(e: %s) -> Self {\n        ProgramError::Custom(e as u32)\n    }\n}\n\n", enumName)

	fmt.Fprintf(&b, "impl<T> DecodeError<T> for %s {\n", enumName)
	fmt.Fprintf(&b, "    fn type_of() -> &'static str {\n        %q\n    }\n}\n\n", enumName)

	fmt.Fprintf(&b, "impl PrintProgramError for %s {\n", enumName)
	b.WriteString("    fn print<E>(&self)\n    where\n        E: 'static\n            + std::error::Error\n            + DecodeError<E>\n            + PrintProgramError\n            + num_traits::FromPrimitive,\n    {\n        msg!(&self.to_string());\n    }\n}")

	f.Add(rustgen.Raw(b.String()))
	return f.Render()
}
