package main

import (
	"fmt"

	"github.com/liserjrqlxue/goUtil/textUtil"
	"github.com/liserjrqlxue/libIM"
)

func NewInfo(item map[string]string) libIM.Info {
	return libIM.Info{
		SampleID: item["sampleID"],
		Fq1:      item["fq1"],
		Fq2:      item["fq2"],
	}
}

// ParseInfoIM reads a sample list with sampleID, fq1 and fq2 columns,
// keeping file order.
func ParseInfoIM(input string) (infoList []libIM.Info, err error) {
	var seen = make(map[string]bool)
	// parser input list
	var sampleMap, _ = textUtil.File2MapArray(input, "\t", nil)

	for _, item := range sampleMap {
		var info = NewInfo(item)
		if info.SampleID == "" && info.Fq1 == "" && info.Fq2 == "" {
			continue
		}
		if info.SampleID == "" || info.Fq1 == "" || info.Fq2 == "" {
			return nil, fmt.Errorf("incomplete row in %s:%+v", input, item)
		}
		if seen[info.SampleID] {
			return nil, fmt.Errorf("dup sampleID:%s", info.SampleID)
		}
		seen[info.SampleID] = true
		infoList = append(infoList, info)
	}
	if len(infoList) == 0 {
		return nil, fmt.Errorf("no sample in %s", input)
	}
	return
}
