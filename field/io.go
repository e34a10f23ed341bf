package field

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

/*
	Plain text field format:
		nx
		ny
		time
		followed by nx*ny records, i outer and j inner, each record holding
		its Ncomp component values one per line
*/

func (f *Field) WriteTo(w io.Writer) (n int64, err error) {
	var (
		bw = bufio.NewWriter(w)
		nn int
	)
	write := func(s string) {
		if err != nil {
			return
		}
		nn, err = bw.WriteString(s)
		n += int64(nn)
	}
	write(strconv.Itoa(f.Nx) + "\n")
	write(strconv.Itoa(f.Ny) + "\n")
	write(formatFloat(f.Time) + "\n")
	for _, val := range f.Data {
		write(formatFloat(val) + "\n")
	}
	if err != nil {
		return
	}
	err = bw.Flush()
	return
}

// Read reads a field in text format. The header dimensions must match the
// receiver, the time stamp and data range are taken as is.
func (f *Field) Read(r io.Reader) (err error) {
	var (
		nx, ny  int
		scanner = bufio.NewScanner(r)
	)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	scanner.Split(bufio.ScanWords)
	if nx, err = readNumber(scanner); err != nil {
		return
	}
	if ny, err = readNumber(scanner); err != nil {
		return
	}
	if nx != f.Nx || ny != f.Ny {
		err = fmt.Errorf("%w: file is [%d,%d], field is [%d,%d]",
			ErrSizeMismatch, nx, ny, f.Nx, f.Ny)
		return
	}
	if f.Time, err = readFloat(scanner); err != nil {
		return
	}
	for i := range f.Data {
		if f.Data[i], err = readFloat(scanner); err != nil {
			err = fmt.Errorf("value %d of %d: %w", i, len(f.Data), err)
			return
		}
	}
	return
}

func (f *Field) WriteFile(fileName string) (err error) {
	var file *os.File
	if file, err = os.Create(fileName); err != nil {
		return fmt.Errorf("unable to create [%s]: %w", fileName, err)
	}
	defer file.Close()
	if _, err = f.WriteTo(file); err != nil {
		return fmt.Errorf("unable to write [%s]: %w", fileName, err)
	}
	return file.Close()
}

func (f *Field) ReadFile(fileName string) (err error) {
	var file *os.File
	if file, err = os.Open(fileName); err != nil {
		return fmt.Errorf("unable to open [%s]: %w", fileName, err)
	}
	defer file.Close()
	if err = f.Read(file); err != nil {
		return fmt.Errorf("unable to read [%s]: %w", fileName, err)
	}
	return
}

func getToken(scanner *bufio.Scanner) (token string, err error) {
	if !scanner.Scan() {
		if err = scanner.Err(); err == nil {
			err = io.ErrUnexpectedEOF
		}
		return
	}
	token = scanner.Text()
	return
}

func readNumber(scanner *bufio.Scanner) (num int, err error) {
	var token string
	if token, err = getToken(scanner); err != nil {
		return
	}
	if num, err = strconv.Atoi(token); err != nil {
		err = fmt.Errorf("unable to read number from token: [%s]", token)
	}
	return
}

func readFloat(scanner *bufio.Scanner) (val float64, err error) {
	var token string
	if token, err = getToken(scanner); err != nil {
		return
	}
	if val, err = strconv.ParseFloat(token, 64); err != nil {
		err = fmt.Errorf("unable to read float from token: [%s]", token)
	}
	return
}

func formatFloat(val float64) string {
	return strconv.FormatFloat(val, 'g', -1, 64)
}
