package file

import (
	"github.com/mugabe/bmsdex/model"
)

func CreateFileNumMap(paths []string) model.FileNumToChartPath {
	res := make(model.FileNumToChartPath)
	for i, v := range paths {
		res[uint32(i)] = v
	}
	return res
}
